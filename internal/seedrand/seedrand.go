// Package seedrand derives stable pseudo-random values from employee
// identifiers. The directory source only supplies raw person records;
// everything rated or biographical is synthesized locally and must come
// out identical on every fetch of the same identifier.
package seedrand

import "math"

// Salts keep the per-field draws independent: each derived field reads
// from its own stream over the same identifier.
const (
	SaltRating        int64 = 12345
	SaltBioYears      int64 = 54321
	SaltBioDepartment int64 = 98765
	SaltProjectCount  int64 = 11111
	SaltFeedbackCount int64 = 22222
	SaltDepartment    int64 = 67890
)

// Fraction returns a deterministic value in [0, 1) for an (id, salt)
// pair using a sine-fold transform: frac(sin(id*salt) * 10000).
// Any identifier is a valid input, including zero and negatives.
func Fraction(id, salt int64) float64 {
	x := math.Sin(float64(id*salt)) * 10000
	f := x - math.Floor(x)
	// Floating point can land exactly on 1.0 after the fold; keep the
	// documented half-open range.
	if f >= 1 {
		f = math.Nextafter(1, 0)
	}
	return f
}

// Rating maps an identifier to a stable rating in [1, 5].
func Rating(id int64) int {
	return IntN(id, SaltRating, 5) + 1
}

// IntN returns a deterministic integer in [0, n) drawn from the
// (id, salt) stream. n must be positive.
func IntN(id, salt int64, n int) int {
	v := int(Fraction(id, salt) * float64(n))
	if v >= n {
		v = n - 1
	}
	return v
}
