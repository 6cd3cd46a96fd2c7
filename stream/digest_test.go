package stream

import "testing"

func TestBlockDigestDeterministicAndSensitive(t *testing.T) {
	a := BlockDigest([]byte("same payload"))
	b := BlockDigest([]byte("same payload"))
	if a != b {
		t.Fatalf("digest should be deterministic, got %d and %d", a, b)
	}

	c := BlockDigest([]byte("different payload"))
	if a == c {
		t.Fatalf("digest should differ for different payloads")
	}
}
