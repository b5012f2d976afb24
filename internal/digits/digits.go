// Package digits holds the lookup tables shared by the decimal and base-36 writers.
package digits

// Pairs maps a value 0..99 to its two ASCII digits: Pairs[2*v], Pairs[2*v+1].
const Pairs = "" +
	"00010203040506070809" +
	"10111213141516171819" +
	"20212223242526272829" +
	"30313233343536373839" +
	"40414243444546474849" +
	"50515253545556575859" +
	"60616263646566676869" +
	"70717273747576777879" +
	"80818283848586878889" +
	"90919293949596979899"

// Base36 is the alphabet used by the identifier encoder.
const Base36 = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// Put2 writes the two ASCII digits of v (0..99) at dst[i] and dst[i+1].
func Put2(dst []byte, i int, v uint64) {
	p := v * 2
	dst[i] = Pairs[p]
	dst[i+1] = Pairs[p+1]
}

// Put1 writes the single ASCII digit of v (0..9) at dst[i].
func Put1(dst []byte, i int, v uint64) {
	dst[i] = byte('0' + v)
}
