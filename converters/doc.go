// Package converters provides two-way adapters between matrix.Dense and
// gonum.org/v1/gonum/mat.
//
// Use converters to hand lvmatrix values to gonum's factorizations
// (LU, QR, SVD, eigen) and to bring gonum results back as matrix.Dense.
// Both directions copy; no storage is ever shared.
package converters
