package domain

// VerifierIdentity is an opaque hash identifying an authorized verifier.
// It is the single authorization key for mutating protected record fields
// and is compared by plain equality.
type VerifierIdentity string

func (v VerifierIdentity) IsZero() bool {
	return v == ""
}

func (v VerifierIdentity) Matches(other VerifierIdentity) bool {
	return v == other
}
