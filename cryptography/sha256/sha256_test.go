package sha256

import (
	"bytes"
	stdsha256 "crypto/sha256"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var vectors = []struct {
	name string
	in   string
	want string
}{
	{
		name: "empty",
		in:   "",
		want: "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855",
	},
	{
		name: "abc",
		in:   "abc",
		want: "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad",
	},
	{
		name: "two blocks",
		in:   "abcdbcdecdefdefgefghfghighijhijkijkljklmklmnlmnomnopnopq",
		want: "248d6a61d20638b8e5c026930c3e6039a33ce45964ff2167f6ecedd419db06c1",
	},
	{
		name: "896 bits",
		in:   "abcdefghbcdefghicdefghijdefghijkefghijklfghijklmghijklmnhijklmnoijklmnopjklmnopqklmnopqrlmnopqrsmnopqrstnopqrstu",
		want: "cf5b16a778af8380036ce59e7b0492370b249b11e8f07a51afac45037afee9d1",
	},
	{
		name: "quick brown fox",
		in:   "The quick brown fox jumps over the lazy dog",
		want: "d7a8fbb307d7809469ca9abcb0082e4f8d5651e46d3cdb762d02d0bf37c9e592",
	},
}

func TestKnownVectors(t *testing.T) {
	for _, tt := range vectors {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Hash([]byte(tt.in)).Hex())

			d := New()
			require.NoError(t, d.Absorb([]byte(tt.in)))
			sum, err := d.Finalize()
			require.NoError(t, err)
			assert.Equal(t, tt.want, sum.String())
		})
	}
}

func TestMillionA(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping long vector in short mode")
	}
	const want = "cdc76e5c9914fb9281a1c7e284d73e67f1809a48a497200e046d39ccc7112cd0"
	d := New()
	chunk := bytes.Repeat([]byte{'a'}, 1000)
	for i := 0; i < 1000; i++ {
		require.NoError(t, d.Absorb(chunk))
	}
	sum, err := d.Finalize()
	require.NoError(t, err)
	assert.Equal(t, want, sum.Hex())
}

// Every length around the one- and two-block padding boundaries.
func TestPaddingBoundaries(t *testing.T) {
	for n := 0; n <= 3*BlockSize+1; n++ {
		msg := make([]byte, n)
		for i := range msg {
			msg[i] = byte(i*7 + n)
		}
		want := stdsha256.Sum256(msg)
		require.Equal(t, Digest(want), Hash(msg), "length %d", n)
	}
}

func TestChunkingIndependence(t *testing.T) {
	msg := []byte(strings.Repeat("0123456789abcdef", 23) + "tail")
	want := Hash(msg)

	for _, step := range []int{1, 3, 7, 55, 56, 63, 64, 65, 128, len(msg)} {
		d := New()
		for i := 0; i < len(msg); i += step {
			end := min(i+step, len(msg))
			require.NoError(t, d.Absorb(msg[i:end]))
		}
		sum, err := d.Finalize()
		require.NoError(t, err)
		assert.Equal(t, want, sum, "step %d", step)
	}
}

func TestDeterministic(t *testing.T) {
	msg := []byte("hello world")
	assert.Equal(t, Hash(msg), Hash(msg))
}

func TestEmptyAbsorbIsNoop(t *testing.T) {
	d := New()
	require.NoError(t, d.Absorb(nil))
	require.NoError(t, d.Absorb([]byte{}))
	require.NoError(t, d.Absorb([]byte("abc")))
	require.NoError(t, d.Absorb(nil))
	sum, err := d.Finalize()
	require.NoError(t, err)
	assert.Equal(t, vectors[1].want, sum.Hex())
	assert.Equal(t, uint64(3), d.Len())
}

func TestMisuseAfterFinalize(t *testing.T) {
	d := New()
	require.NoError(t, d.Absorb([]byte("abc")))
	_, err := d.Finalize()
	require.NoError(t, err)
	require.True(t, d.Finalized())

	err = d.Absorb([]byte("more"))
	require.ErrorIs(t, err, ErrAlreadyFinalized)
	var misuse *MisuseError
	require.True(t, errors.As(err, &misuse))
	assert.Equal(t, "absorb", misuse.Op)

	n, err := d.Write([]byte("more"))
	assert.Zero(t, n)
	require.ErrorIs(t, err, ErrAlreadyFinalized)

	sum, err := d.Finalize()
	require.ErrorIs(t, err, ErrAlreadyFinalized)
	assert.True(t, sum.IsZero())
	require.True(t, errors.As(err, &misuse))
	assert.Equal(t, "finalize", misuse.Op)
}

func TestSumMany(t *testing.T) {
	cases := []struct {
		name string
		in   [][]byte
	}{
		{"all empty", [][]byte{nil, []byte("")}},
		{"mixed", [][]byte{[]byte("aaaa"), []byte("😎"), []byte("aaaa")}},
		{"composite", [][]byte{bytes.Repeat([]byte("a"), 1<<10), []byte("AA"), bytes.Repeat([]byte("z"), 100)}},
	}
	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			want := stdsha256.Sum256(bytes.Join(tt.in, nil))
			assert.Equal(t, Digest(want), SumMany(tt.in[0], tt.in[1:]...))
		})
	}
}

func TestHashReader(t *testing.T) {
	msg := bytes.Repeat([]byte("streamed input "), 1000)
	sum, err := HashReader(bytes.NewReader(msg))
	require.NoError(t, err)
	assert.Equal(t, Digest(stdsha256.Sum256(msg)), sum)
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("boom") }

func TestHashReaderError(t *testing.T) {
	_, err := HashReader(failingReader{})
	require.EqualError(t, err, "boom")
}

func FuzzHashMatchesStdlib(f *testing.F) {
	f.Add([]byte(""), uint8(1))
	f.Add([]byte("abc"), uint8(2))
	f.Add(bytes.Repeat([]byte{0xff}, 130), uint8(63))
	f.Fuzz(func(t *testing.T, msg []byte, step uint8) {
		want := Digest(stdsha256.Sum256(msg))
		if got := Hash(msg); got != want {
			t.Fatalf("one-shot mismatch: got %s want %s", got, want)
		}
		s := int(step) + 1
		d := New()
		for i := 0; i < len(msg); i += s {
			_ = d.Absorb(msg[i:min(i+s, len(msg))])
		}
		got, err := d.Finalize()
		if err != nil {
			t.Fatalf("Finalize: %v", err)
		}
		if got != want {
			t.Fatalf("streaming mismatch (step %d): got %s want %s", s, got, want)
		}
		if got := digestWith(blockGeneric, msg, s); got != want {
			t.Fatalf("generic compression mismatch (step %d): got %s want %s", s, got, want)
		}
		if got := digestWith(blockUnrolled, msg, s); got != want {
			t.Fatalf("unrolled compression mismatch (step %d): got %s want %s", s, got, want)
		}
	})
}

func digestWith(compress func(h *[8]uint32, p []byte), msg []byte, step int) Digest {
	d := newHasher(compress)
	for i := 0; i < len(msg); i += step {
		_ = d.Absorb(msg[i:min(i+step, len(msg))])
	}
	sum, _ := d.Finalize()
	return sum
}

func TestCompressionVariantsAgree(t *testing.T) {
	for n := 0; n <= 3*BlockSize+1; n++ {
		msg := make([]byte, n)
		for i := range msg {
			msg[i] = byte(i*13 + n)
		}
		want := Digest(stdsha256.Sum256(msg))
		for _, step := range []int{1, 17, BlockSize, n + 1} {
			require.Equal(t, want, digestWith(blockGeneric, msg, step), "generic length %d step %d", n, step)
			require.Equal(t, want, digestWith(blockUnrolled, msg, step), "unrolled length %d step %d", n, step)
		}
	}
}
