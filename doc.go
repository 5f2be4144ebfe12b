// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

/*
Package dancezdd implements the "Dancing-on-ZDD" exact cover engine: a hybrid
of Knuth's Dancing Links (DLX) and a Zero-suppressed Binary Decision Diagram
(ZDD). Given a ZDD that enumerates a (possibly huge) family of subsets of a
universe {1..N}, the engine finds every exact cover in that family — every
sub-family of subsets whose disjoint union is exactly {1..N} — without ever
expanding the ZDD into an explicit list of options.

Basics

A ZDD node has a variable, a hi-child (include the variable) and a lo-child
(exclude it). A root-to-⊤ path through the diagram selects the variables
whose hi-branch was taken; this is one "option" (one candidate subset). The
engine augments every node with doubly-linked per-variable chains, parent-link
lists, and running route counts, so that a DLX-style Cover of a variable can
be performed directly on the diagram: Cover hides every node whose presence
would conflict with having selected that variable, propagating the loss of
reachability through the DAG in variable order; Uncover replays the same
mutations in reverse from a LIFO log to restore the diagram exactly.

Building a ZDD, or reducing one, is out of scope for this package: it reads
an already-built ZDD from the text format described in Load, and only
implements Cover/Uncover, the option enumerator built on top of them, and the
recursive exact-cover search driver.

Use of a sanity-check mode

Passing Sanity(true) to Load turns on validation, once after the loaded ZDD
has been set up, of the five structural invariants of the node/header arena
(chain integrity, parent-list integrity, route-count consistency, header
counts, and the active-header invariant). Covers and uncovers performed by
Search are not validated.
*/
package dancezdd
