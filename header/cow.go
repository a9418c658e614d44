package header

import "slices"

// Cow is a copy-on-write text value.
// It either borrows an immutable string (typically a constant known at compile time)
// or owns a byte buffer that is never written in place.
// The zero value is an empty borrowed string.
type Cow struct {
	borrowed string
	owned    []byte
	isOwned  bool
}

// Borrowed returns a Cow that references s without copying.
func Borrowed(s string) Cow { return Cow{borrowed: s} }

// Owned returns a Cow that owns a copy of b.
func Owned(b []byte) Cow {
	return Cow{owned: append(make([]byte, 0, len(b)), b...), isOwned: true}
}

// IsOwned reports whether the value owns its buffer.
func (c Cow) IsOwned() bool { return c.isOwned }

// Len returns the length of the text in bytes.
func (c Cow) Len() int {
	if c.isOwned {
		return len(c.owned)
	}
	return len(c.borrowed)
}

func (c Cow) String() string {
	if c.isOwned {
		return string(c.owned)
	}
	return c.borrowed
}

// Mut applies fn to a private copy of the text and keeps the buffer fn returns.
// Copies of c made before the call, including copies of the header holding it, are left untouched.
func (c *Cow) Mut(fn func(b []byte) []byte) {
	var b []byte
	if c.isOwned {
		b = slices.Clone(c.owned)
	} else {
		b = []byte(c.borrowed)
	}
	*c = Cow{owned: fn(b), isOwned: true}
}

// Clone returns a copy of c. Owned buffers are copied, borrowed strings are shared.
func (c Cow) Clone() Cow {
	if c.isOwned {
		c.owned = slices.Clone(c.owned)
	}
	return c
}

// Equal compares the texts, regardless of ownership.
func (c Cow) Equal(val any) bool {
	var other Cow
	switch v := val.(type) {
	case Cow:
		other = v
	case *Cow:
		if v == nil {
			return false
		}
		other = *v
	default:
		return false
	}
	return c.String() == other.String()
}
