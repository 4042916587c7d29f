package hashid_test

import (
	"fmt"
	"time"

	"github.com/wasmium-network/hashid"
	"github.com/wasmium-network/hashid/digest"
)

// ExampleNew demonstrates constructing an identifier from hashed content
// and encoding it to the canonical 44-byte layout.
func ExampleNew() {
	d := digest.Sum([]byte("hello world"))
	id := hashid.New(d)

	buf := id.Encode()
	fmt.Printf("encoded length: %d\n", len(buf))
	fmt.Printf("digest preserved: %t\n", hashid.DecodeDigest(buf) == d)
	// Output:
	// encoded length: 44
	// digest preserved: true
}

// ExampleIdentifier_String pins the clock to show the full hex rendering:
// 24 timestamp characters followed by 64 digest characters.
func ExampleIdentifier_String() {
	epoch := hashid.ClockFunc(func() time.Time { return time.Unix(0, 0) })
	id := hashid.New(digest.Sum(nil), hashid.WithClock(epoch))

	fmt.Println(id)
	// Output:
	// 400000000000000a00000000af1349b9f5f9a1a6a0404dee36dcc9499bcb25c9adc112b7cc9a93cae41f3262
}

// ExampleIdentifier_Compare demonstrates that encoded identifiers order by
// creation time first.
func ExampleIdentifier_Compare() {
	at := func(sec int64) hashid.Option {
		return hashid.WithClock(hashid.ClockFunc(func() time.Time { return time.Unix(sec, 0) }))
	}

	earlier := hashid.New(digest.Sum([]byte("b")), at(1000))
	later := hashid.New(digest.Sum([]byte("a")), at(2000))

	fmt.Println(earlier.Compare(later))
	// Output:
	// -1
}

// ExampleDecodeTimestamp recovers the construction instant from an
// encoded identifier.
func ExampleDecodeTimestamp() {
	noon := time.Date(2024, time.March, 15, 12, 0, 0, 0, time.UTC)
	clock := hashid.ClockFunc(func() time.Time { return noon })

	id := hashid.Sum([]byte("report.pdf"), hashid.WithClock(clock))

	ts, err := hashid.DecodeTimestamp(id.Encode())
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(ts.Time().UTC().Format(time.RFC3339))
	// Output:
	// 2024-03-15T12:00:00Z
}

// ExampleRand32 generates an identifier from random input material.
func ExampleRand32() {
	id, err := hashid.Rand32()
	if err != nil {
		fmt.Println(err)
		return
	}

	buf := id.Encode()
	fmt.Printf("encoded length: %d\n", len(buf))
	// Output:
	// encoded length: 44
}
