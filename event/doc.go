/*
Package event provides the push-based value channels the rule tree and
the style producer are built on.

The model is single-threaded and cooperative: emission, subscription and
cancellation all run synchronously on the caller's stack; there are no
goroutines and no locks here. An Emitter broadcasts values to receivers;
a Cached emitter additionally replays its last value to new subscribers,
which is the contract rule property reads rely on. Every registration
hands out a Subscription carrying explicit cancellation and completion
hooks.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package event
