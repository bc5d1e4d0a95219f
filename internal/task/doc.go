// Package task holds the task record and the file-backed task store.
//
// The task file is a JSON array, one object per task:
//
//	[
//	  {
//	    "id": 1718000000000,
//	    "text": "Buy milk",
//	    "completed": false,
//	    "createdAt": "2024-06-10 08:13:20"
//	  }
//	]
//
// # Persistence
//
// The store keeps the whole collection in memory. Every mutation is applied to
// memory first and then the complete collection is written back to the default
// file. A failed write is logged and reported through Store.LastErr; it never
// undoes the in-memory change.
//
// Writes go to a temporary file in the target directory which is then renamed
// over the destination, so a failed save leaves the previous file intact.
//
// # File Format
//
// When writing task files, the package uses:
//   - 2-space indentation
//   - Trailing newline
//   - createdAt formatted as "2006-01-02 15:04:05" in local time
//
// # Identity
//
// Ids are 64-bit integers drawn from a monotonic generator seeded with the wall
// clock in milliseconds. A store never hands out an id it has already issued or
// loaded, even when several tasks are added within one millisecond.
package task
