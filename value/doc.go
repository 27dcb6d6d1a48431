/*
Package value models CSS property values.

Plain values (strings, numbers, booleans) pass through untouched.
Structured numeric values form a closed sum type Numeric with three
variants: Dimension (a number with a unit), Zero (the unit-polymorphic
additive identity of a unit family) and Calc (a binary calc() expression).
Units are grouped into kinds (Length, Angle, Time, …), each owning one
interned zero per priority.

Arithmetic is exact and algebraic: same-unit dimensions collapse, results
of exactly zero intern to the kind's zero, scale operations fold into
existing calc() scale nodes, and negating a difference swaps its operands.
Nothing in this package ever raises an error; incompatible combinations
are a convention violation, not a runtime condition (Kind.Conv reports
"no conversion possible" by an absent result).

Every value carries a priority flag. SplitPriority decomposes arbitrary
property values into value and priority, recognizing the " !important"
string suffix convention.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package value
