// Package remote refreshes the local cache of the template repository.
//
// A sync is destructive: the previous cache is removed before a shallow
// clone replaces it. If the clone fails the cache is left in whatever
// state the clone produced; the catalog then degrades to the bundled set
// when nothing usable is found.
package remote
