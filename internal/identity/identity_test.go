package identity

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/asteroid-belt/ymstat/internal/hash"
)

const (
	goldenEmail      = "user@example.com"
	goldenID         = "1ce528bf535c3241291cfa50ea7df1c13ac85d3a7ab8f636c18567e014e93d44"
	goldenSaltDigest = "6f2e5b9b768a97d226dcc34d40cb0ce618896e73ee84eb6f2e924797ef54d536"
)

var hexID = regexp.MustCompile(`^[0-9a-f]{64}$`)

func TestSaltDigest_Golden(t *testing.T) {
	assert.Equal(t, goldenSaltDigest, DefaultHasher.SaltDigest())
}

func TestPseudonymousID_Golden(t *testing.T) {
	assert.Equal(t, goldenID, PseudonymousID(goldenEmail))
}

func TestPseudonymousID_OrderDependent(t *testing.T) {
	reversed := hash.StreamSHA256Hex(goldenSaltDigest, goldenEmail)

	assert.Equal(t, "c5b4ca2f72f54b0e686f08f452ec89de6457549c6b374759a046ea2cf6946e0f", reversed)
	assert.NotEqual(t, reversed, PseudonymousID(goldenEmail))
}

func TestPseudonymousID_Deterministic(t *testing.T) {
	first := PseudonymousID("someone@example.org")
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, PseudonymousID("someone@example.org"))
	}
}

func TestPseudonymousID_Sensitivity(t *testing.T) {
	emails := []string{
		"user@example.com",
		"User@example.com",
		"user@example.com ",
		"user2@example.com",
		"",
	}

	seen := make(map[string]string, len(emails))
	for _, e := range emails {
		id := PseudonymousID(e)
		if prev, dup := seen[id]; dup {
			t.Fatalf("emails %q and %q produced the same id %s", prev, e, id)
		}
		seen[id] = e
	}
}

func TestPseudonymousID_Format(t *testing.T) {
	tests := []struct {
		name  string
		email string
	}{
		{"plain", "user@example.com"},
		{"empty", ""},
		{"malformed", "not an email"},
		{"unicode", "пользователь@пример.рф"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id := PseudonymousID(tt.email)
			assert.Len(t, id, IDLength)
			assert.Regexp(t, hexID, id)
		})
	}
}

func TestPseudonymousID_EmptyAndUnicodeGolden(t *testing.T) {
	assert.Equal(t, "6803676b4c60c7dbf65001942ae0e07c0abfdfae37c6c810a042f622e30757b2", PseudonymousID(""))
	assert.Equal(t, "e34d3b5b47dd1c5d434552ff764134af3be7df9d3b9e7616b20439f95cd429b1", PseudonymousID("пользователь@пример.рф"))
}

func TestNewHasher_DifferentSalt(t *testing.T) {
	other := NewHasher("another salt")

	assert.NotEqual(t, DefaultHasher.SaltDigest(), other.SaltDigest())
	assert.NotEqual(t, PseudonymousID(goldenEmail), other.PseudonymousID(goldenEmail))
}

func TestShortID(t *testing.T) {
	assert.Equal(t, "1ce528bf535c3241", ShortID(goldenID))
	assert.Len(t, ShortID(PseudonymousID(goldenEmail)), hash.IDLength)
	assert.Equal(t, "abc", ShortID("abc"))
}

func TestMaskEmail(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"user@example.com", "u***@example.com"},
		{"ab@example.com", "***@example.com"},
		{"no-at-sign", "***"},
		{"a@b@c", "***"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, MaskEmail(tt.in))
		})
	}
}
