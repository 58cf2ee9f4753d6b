// Package cache provides a generic, thread-safe LRU (Least Recently Used)
// store used to memoize validation verdicts keyed by the exact value that
// produced them.
//
// A cache created with a positive capacity evicts the least recently used
// entry once the capacity is exceeded. A cache created with a capacity of
// zero or less grows without bound, which suits fields whose value space is
// small (usernames, emails typed by one user) where re-checking a value the
// backend already answered is pure waste.
//
// # Key Features
//
//   - Generic over any comparable key type and any value type
//   - Thread-safe, mutex-based synchronization
//   - Bounded mode with strict LRU eviction, or unbounded mode
//   - Optional eviction callback for cleanup or metrics
//   - O(1) Get, Put, and Remove
//
// # Usage
//
// Create a bounded cache:
//
//	c := cache.New[string, string](100)
//
// Or an unbounded one:
//
//	c := cache.New[string, string](0)
//
// Basic operations:
//
//	c.Put("alice@example.com", "")                 // remember a passing verdict
//	c.Put("admin", "This username is taken")       // remember a failing one
//
//	msg, found := c.Get("admin")                   // marks the entry recently used
//	if found {
//		// msg == "This username is taken"
//	}
//
//	c.Remove("admin")
//	c.Clear()
//
// # Recency
//
// An entry counts as recently used when it is read with Get or written with
// Put. In bounded mode the entry that has gone longest without either is the
// one evicted.
//
// # Eviction Callback
//
// Register a callback to observe every removal caused by capacity pressure,
// Remove, or Clear:
//
//	c.SetOnEvict(func(key, verdict string) {
//		log.Printf("dropped %s", key)
//	})
package cache
