// Package constraints holds type constraints shared by the module packages.
package constraints

// Byteseq is satisfied by string and []byte based types:
// header text arrives as either form and is read without conversion.
type Byteseq interface {
	~string | ~[]byte
}
