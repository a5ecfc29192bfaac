// Package crypto exposes the minimal primitives used by Parley.
//
// Contents
//
//   - Ed25519 key generation, signing and verification (GenerateEd25519,
//     SignEd25519, VerifyEd25519)
//   - Message authorship signatures binding creator, key and text
//     (AuthPayload, SignAuthorship, VerifyAuthorship)
//   - Short public-key fingerprints for display/logging (Fingerprint)
//   - Best-effort memory wiping for sensitive byte slices (Wipe)
//
// # Notes
//
// All functions return fixed-size array types defined in internal/domain to
// avoid accidental reallocations. Callers should treat returned secrets as
// sensitive and rely on Wipe when practical to reduce lifetime in memory.
package crypto
