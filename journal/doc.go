// Package journal stores outbound FIX messages by MsgSeqNum so they can be resent.
//
// Messages are appended to an active segment as framed records:
//
//	[seq uint32][len uint32][message bytes]
//
// When the active segment reaches the configured size it is sealed: the payload
// is compressed with the configured codec, digested with xxHash64, and described
// by a 32-byte SegmentHeader. Sealed segments are immutable.
//
// Usage:
//
//	j, err := journal.New(journal.WithCompression(format.CompressionZstd))
//	if err != nil {
//	    return err
//	}
//	_ = j.Append(1, msg)
//
//	for seq, msg := range j.Range(from, to) {
//	    resend(seq, msg)
//	}
//
// A Journal is safe for concurrent use. Appends take a write lock; Get, Range and
// exports take a read lock.
package journal
