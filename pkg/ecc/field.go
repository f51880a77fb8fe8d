// Package ecc implements finite field arithmetic and the short-Weierstrass
// elliptic curve group law over arbitrary prime fields.
//
// Field elements and points are immutable value types: every operation
// returns a new value and never mutates its receiver, so they are safe to
// share across goroutines without locking.
package ecc

import (
	"fmt"
	"math/big"
)

// FieldElement represents a residue class modulo a prime.
// The zero value is not usable; construct elements with NewFieldElement.
type FieldElement struct {
	num   *big.Int
	prime *big.Int
}

// NewFieldElement creates a field element with the given value and modulus.
// It returns ErrOutOfRange unless 0 <= num < prime. The primality of the
// modulus is a caller invariant and is not checked here; Div and Pow rely
// on it via Fermat's little theorem.
func NewFieldElement(num, prime *big.Int) (*FieldElement, error) {
	if num.Sign() < 0 || num.Cmp(prime) >= 0 {
		return nil, fmt.Errorf("%w: %v not in field range 0 to %v", ErrOutOfRange, num, new(big.Int).Sub(prime, big.NewInt(1)))
	}
	return &FieldElement{
		num:   new(big.Int).Set(num),
		prime: new(big.Int).Set(prime),
	}, nil
}

// mustFieldElement is for internal constants whose range is known statically.
func mustFieldElement(num, prime *big.Int) *FieldElement {
	f, err := NewFieldElement(num, prime)
	if err != nil {
		panic(err)
	}
	return f
}

// Num returns a copy of the element's value.
func (f *FieldElement) Num() *big.Int {
	return new(big.Int).Set(f.num)
}

// Prime returns a copy of the element's modulus.
func (f *FieldElement) Prime() *big.Int {
	return new(big.Int).Set(f.prime)
}

// Equal reports whether both value and modulus match.
// Elements from different fields are never equal.
func (f *FieldElement) Equal(other *FieldElement) bool {
	if other == nil {
		return false
	}
	return f.num.Cmp(other.num) == 0 && f.prime.Cmp(other.prime) == 0
}

func (f *FieldElement) String() string {
	return fmt.Sprintf("FieldElement_%v(%v)", f.prime, f.num)
}

func (f *FieldElement) sameField(other *FieldElement) error {
	if f.prime.Cmp(other.prime) != 0 {
		return fmt.Errorf("%w: %v and %v", ErrFieldMismatch, f.prime, other.prime)
	}
	return nil
}

// Add returns f + other mod prime.
func (f *FieldElement) Add(other *FieldElement) (*FieldElement, error) {
	if err := f.sameField(other); err != nil {
		return nil, err
	}
	num := new(big.Int).Add(f.num, other.num)
	num.Mod(num, f.prime)
	return &FieldElement{num: num, prime: f.Prime()}, nil
}

// Sub returns f - other mod prime.
func (f *FieldElement) Sub(other *FieldElement) (*FieldElement, error) {
	if err := f.sameField(other); err != nil {
		return nil, err
	}
	num := new(big.Int).Sub(f.num, other.num)
	num.Mod(num, f.prime)
	return &FieldElement{num: num, prime: f.Prime()}, nil
}

// Mul returns f * other mod prime.
func (f *FieldElement) Mul(other *FieldElement) (*FieldElement, error) {
	if err := f.sameField(other); err != nil {
		return nil, err
	}
	num := new(big.Int).Mul(f.num, other.num)
	num.Mod(num, f.prime)
	return &FieldElement{num: num, prime: f.Prime()}, nil
}

// Pow returns f^exponent mod prime. Negative exponents are reduced modulo
// prime-1 first, so Pow(-1) is the Fermat inverse for a prime modulus.
func (f *FieldElement) Pow(exponent *big.Int) *FieldElement {
	e := new(big.Int).Set(exponent)
	if e.Sign() < 0 {
		pMinus1 := new(big.Int).Sub(f.prime, big.NewInt(1))
		e.Mod(e, pMinus1)
	}
	num := new(big.Int).Exp(f.num, e, f.prime)
	return &FieldElement{num: num, prime: f.Prime()}
}

// Div returns f / other mod prime, computed as f * other^(p-2).
// The result is only meaningful when the modulus is prime.
func (f *FieldElement) Div(other *FieldElement) (*FieldElement, error) {
	if err := f.sameField(other); err != nil {
		return nil, err
	}
	pMinus2 := new(big.Int).Sub(f.prime, big.NewInt(2))
	return f.Mul(other.Pow(pMinus2))
}

// IsZero reports whether the element's value is zero.
func (f *FieldElement) IsZero() bool {
	return f.num.Sign() == 0
}
