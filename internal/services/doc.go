// Package services contains the application services behind the SkillSync
// client.
//
//   - SkillStore keeps the skill collection in memory, newest first, and
//     mirrors it to the "skills" key after every mutation.
//   - SessionStore registers the single identity, logs it in and out and
//     answers whether a session is active.
//   - Preferences stores the UI theme.
//
// All state lives in a kv.Repository. Methods that touch storage take a
// context.Context and honour its cancellation through the repository.
package services
