// Package storage persists the onboarding record.
//
// A Slot serializes one onboarding.FormData as JSON under a single key
// ("onboardingData" by default) of a key/value Backend:
//
//	{"name":"Ana","email":"ana@x.com","companyName":"Acme","industry":"technology",
//	 "companySize":"1-10","theme":"dark","dashboardLayout":"wide","isComplete":true}
//
// # Backends
//
//   - file: one <key>.json file per key in a data directory, written atomically
//   - sqlite: a kv table in a SQLite database (pure Go driver, no cgo)
//   - memory: a process-local map, used by tests and --store memory
//
// # Error Handling
//
// A missing slot and a slot whose contents are not a JSON object both load
// as "not found". Backend I/O failures are returned to the caller.
package storage
