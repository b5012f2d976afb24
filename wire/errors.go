package wire

import (
	"fmt"
	"strings"

	"github.com/raul-gherman/fix44-forge-helpers/errs"
)

// Sentinels matched by errors.Is on a *ReadError of the corresponding kind.
var (
	ErrInvalidValue          = errs.ErrInvalidValue
	ErrMissingRequiredFields = errs.ErrMissingRequiredFields
)

// ReadErrorKind identifies the ReadError variant.
type ReadErrorKind uint8

const (
	// InvalidValue reports a field whose bytes failed strict validation.
	InvalidValue ReadErrorKind = iota + 1
	// MissingRequiredFields reports required members absent from a message.
	MissingRequiredFields
)

func (k ReadErrorKind) String() string {
	switch k {
	case InvalidValue:
		return "InvalidValue"
	case MissingRequiredFields:
		return "MissingRequiredFields"
	default:
		return "Unknown"
	}
}

// MemberKind classifies a message member in MissingRequiredFields metadata.
type MemberKind uint8

const (
	MemberField     MemberKind = 0
	MemberComponent MemberKind = 1
	MemberGroup     MemberKind = 2
)

func (k MemberKind) String() string {
	switch k {
	case MemberField:
		return "field"
	case MemberComponent:
		return "component"
	default:
		return "group"
	}
}

// Member describes one required member of a message. For groups, Tag is the
// NumInGroup count tag.
type Member struct {
	Name string
	Tag  uint16
	Kind MemberKind
}

// ReadError is the structured error of the validated read path.
//
// For InvalidValue, Name, Tag and Msg identify the field and the failure.
// For MissingRequiredFields, bit i of MissingMask is set when Meta[i] is absent.
type ReadError struct {
	Kind ReadErrorKind

	Name string
	Tag  uint16
	Msg  string

	MissingMask uint64
	Meta        []Member
}

var _ error = (*ReadError)(nil)

// NewInvalidValue returns an InvalidValue ReadError.
//
// Parameters:
//   - name: Field name, e.g. "MsgSeqNum"
//   - tag: FIX tag number, e.g. 34
//   - msg: Human-readable reason
//
// Returns:
//   - *ReadError: The error value
func NewInvalidValue(name string, tag uint16, msg string) *ReadError {
	return &ReadError{Kind: InvalidValue, Name: name, Tag: tag, Msg: msg}
}

// NewMissingRequiredFields returns a MissingRequiredFields ReadError.
//
// Parameters:
//   - mask: Bit i set when meta[i] is missing
//   - meta: Required members in bit order (at most 64)
//
// Returns:
//   - *ReadError: The error value
func NewMissingRequiredFields(mask uint64, meta []Member) *ReadError {
	return &ReadError{Kind: MissingRequiredFields, MissingMask: mask, Meta: meta}
}

// Error implements the error interface.
func (e *ReadError) Error() string {
	switch e.Kind {
	case InvalidValue:
		return fmt.Sprintf("Invalid value for %s (tag=%d): %s", e.Name, e.Tag, e.Msg)
	case MissingRequiredFields:
		if e.MissingMask == 0 {
			return "No required members are missing"
		}

		var sb strings.Builder
		fmt.Fprintf(&sb, "Missing required members (mask=0x%X): ", e.MissingMask)
		first := true
		for i, m := range e.Meta {
			if i >= 64 || (e.MissingMask>>i)&1 == 0 {
				continue
			}
			if !first {
				sb.WriteString(", ")
			}
			first = false
			if m.Kind == MemberGroup {
				fmt.Fprintf(&sb, "%s %s(countTag=%d)", m.Kind, m.Name, m.Tag)
			} else {
				fmt.Fprintf(&sb, "%s %s(tag=%d)", m.Kind, m.Name, m.Tag)
			}
		}

		return sb.String()
	default:
		return "unknown read error"
	}
}

// Is reports whether target is the sentinel matching the error kind, so callers
// can use errors.Is(err, errs.ErrInvalidValue).
func (e *ReadError) Is(target error) bool {
	switch e.Kind {
	case InvalidValue:
		return target == errs.ErrInvalidValue
	case MissingRequiredFields:
		return target == errs.ErrMissingRequiredFields
	default:
		return false
	}
}

// MissingMemberNames returns the names of the missing members in bit order.
//
// Returns:
//   - []string: Missing member names (empty, non-nil when the mask is zero)
//   - bool: false when e is not a MissingRequiredFields error
func (e *ReadError) MissingMemberNames() ([]string, bool) {
	if e.Kind != MissingRequiredFields {
		return nil, false
	}

	names := []string{}
	for i, m := range e.Meta {
		if i < 64 && (e.MissingMask>>i)&1 == 1 {
			names = append(names, m.Name)
		}
	}

	return names, true
}
