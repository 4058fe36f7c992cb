package session

import (
	"bufio"
	"net"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func Test_eatBulkString(t *testing.T) {
	type testCase struct {
		name string
		data []byte
		c    int
		want int
	}
	tests := []testCase{
		{"test-1", []byte("$0\r\n\r\n"), 0, 6},
		{"test-2", []byte("$5\r\nhello\r\n"), 0, 11},
		{"test-3", []byte("$5\r\nhello\r\nthere"), 0, 11},
		{"test-4", []byte("$0\r\nhel\r\nthere"), 0, 0},
		{"test-5", []byte("$5\r\nhelllllo\r\nthere"), 0, 0},
		{"test-6", []byte("$55\r\nhelllllo\r\nthere"), 0, 0},
		{"test-7", []byte("$\r\nhelllllo\r\nthere"), 0, 0},
		{"test-8", []byte("5\r\nhelllllo\r\nthere"), 0, 0},
		{"test-9", []byte("$a\r\nhello\r\nthere\r\n"), 0, 0},
		{"test-10", []byte("$5\r\nhellothere"), 0, 0},
		{"test-11", []byte("random$5\r\nhello\r\n"), 6, 11},
		{"test-12", []byte("random"), 0, 0},
		{"test-13", []byte("$6\r\nrandom"), 0, 0},
		{"test-14", []byte("$6\r\nrando\r\n"), 0, 0},
		{"negative-length", []byte("$-1\r\n\r\n"), 0, 0},
		{"length-overflow", []byte("$9223372036854775807\r\nabc\r\n"), 0, 0},
		{"length-past-buffer", []byte("$4\r\nabc\r\n"), 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := eatBulkString(tt.data, tt.c); got != tt.want {
				t.Errorf("eatBulkString() = %v, want %v", got, tt.want)
			}
		})
	}
}

func Test_eatArray(t *testing.T) {
	type testCase struct {
		name string
		data []byte
		want int
	}
	tests := []testCase{
		{"empty", []byte("*0\r\n"), 4},
		{"one", []byte("*1\r\n$5\r\nprint\r\n"), 15},
		{"two-with-trailer", []byte("*2\r\n$3\r\nget\r\n$1\r\n2\r\nping\r\n"), 20},
		{"short", []byte("*2\r\n$3\r\nget\r\n"), 0},
		{"inline", []byte("append 1 2\r\n"), 0},
		{"bad-count", []byte("*x\r\n$3\r\nget\r\n"), 0},
		{"element-length-overflow", []byte("*1\r\n$9223372036854775807\r\nabc\r\n"), 0},
		{"huge-count", []byte("*9223372036854775807\r\n$3\r\nget\r\n"), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, eatArray(tt.data, 0))
		})
	}
}

func Test_parseArray(t *testing.T) {
	got, err := parseArray([]byte("*3\r\n$6\r\ninsert\r\n$1\r\n2\r\n$2\r\n15\r\n"))
	require.NoError(t, err)
	require.Equal(t, []any{"insert", "2", "15"}, got)

	_, err = parseArray([]byte("*3\r\n$6\r\ninsert\r\n"))
	require.Error(t, err)
}

func TestSplitMessages(t *testing.T) {
	type testCase struct {
		name  string
		input string
		want  []string
	}
	tests := []testCase{
		{
			name:  "arrays-and-lines",
			input: "*1\r\n$5\r\nprint\r\nappend 1 2\r\n*2\r\n$3\r\nget\r\n$1\r\n1\r\ncount",
			want: []string{
				"*1\r\n$5\r\nprint\r\n",
				"append 1 2",
				"*2\r\n$3\r\nget\r\n$1\r\n1\r\n",
				"count",
			},
		},
		{
			name:  "length-overflow",
			input: "*1\r\n$9223372036854775807\r\nabc\r\nping\r\n",
			want:  []string{"*1", "$9223372036854775807", "abc", "ping"},
		},
		{
			name:  "star-line",
			input: "*foo\r\nping\r\n",
			want:  []string{"*foo", "ping"},
		},
		{
			name:  "star-line-lf",
			input: "*2\nping\n",
			want:  []string{"*2", "ping"},
		},
		{
			name:  "bad-element-header",
			input: "*1\r\nprint\r\ncount\r\n",
			want:  []string{"*1", "print", "count"},
		},
		{
			name:  "partial-array-at-eof",
			input: "*2\r\n$3\r\nget\r\n",
			want:  []string{"*2\r\n$3\r\nget\r\n"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scanner := bufio.NewScanner(strings.NewReader(tt.input))
			scanner.Split(SplitMessages)

			var got []string
			for scanner.Scan() {
				got = append(got, scanner.Text())
			}
			require.NoError(t, scanner.Err())
			require.Equal(t, tt.want, got)
		})
	}
}

func TestSplitMessages_WaitsForPartialArray(t *testing.T) {
	for _, in := range []string{"*", "*2", "*2\r\n", "*2\r\n$3", "*2\r\n$3\r\nge", "*1\r\n$100\r\nabc\r\n"} {
		advance, token, err := SplitMessages([]byte(in), false)
		require.NoError(t, err, in)
		require.Zero(t, advance, in)
		require.Nil(t, token, in)
	}
}

func TestSerialize(t *testing.T) {
	type testCase struct {
		name string
		in   any
		want string
	}
	tests := []testCase{
		{"nil", nil, "$-1\r\n"},
		{"int", 42, ":42\r\n"},
		{"negative", -3, ":-3\r\n"},
		{"simple-string", "OK", "+OK\r\n"},
		{"bulk-string", "a\nb", "$3\r\na\nb\r\n"},
		{"error", errorInvalidCommand, "-invalid command\r\n"},
		{"array", []any{20, 10}, "*2\r\n:20\r\n:10\r\n"},
		{"int-slice", []int{1}, "*1\r\n:1\r\n"},
		{"empty-array", []any{}, "*0\r\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Serialize(tt.in)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}

	_, err := Serialize(3.5)
	require.Error(t, err)
}

func TestFormatText(t *testing.T) {
	require.Equal(t, "(nil)", FormatText(nil))
	require.Equal(t, "7", FormatText(7))
	require.Equal(t, "OK", FormatText("OK"))
	require.Equal(t, "(empty)", FormatText([]any{}))
	require.Equal(t, "10\n20", FormatText([]any{10, 20}))
}

func TestServer_RoundTrip(t *testing.T) {
	s := NewServer("127.0.0.1:0")
	ready := make(chan string, 1)
	s.Ready = func(addr string) { ready <- addr }
	done := make(chan error, 1)
	go func() { done <- s.Start() }()

	var addr string
	select {
	case addr = <-ready:
	case err := <-done:
		t.Fatalf("server exited: %v", err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not start")
	}

	conn, err := net.Dial("tcp", addr)
	require.NoError(t, err)
	defer conn.Close()
	require.NoError(t, conn.SetDeadline(time.Now().Add(5*time.Second)))
	r := bufio.NewReader(conn)

	send := func(req string) {
		t.Helper()
		_, err := conn.Write([]byte(req))
		require.NoError(t, err)
	}
	readLine := func() string {
		t.Helper()
		line, err := r.ReadString('\n')
		require.NoError(t, err)
		return line
	}

	send("append 10 20\r\n")
	require.Equal(t, ":2\r\n", readLine())

	send("*1\r\n$7\r\nreverse\r\n")
	require.Equal(t, "+OK\r\n", readLine())

	send("print\r\n")
	require.Equal(t, "*2\r\n", readLine())
	require.Equal(t, ":20\r\n", readLine())
	require.Equal(t, ":10\r\n", readLine())

	send("get 3\r\nclear\r\nreverse\r\n")
	require.Equal(t, "$-1\r\n", readLine())
	require.Equal(t, "+OK\r\n", readLine())
	require.Equal(t, "-ERR lists: list is empty\r\n", readLine())

	send("bogus\r\n")
	require.Equal(t, "-invalid command\r\n", readLine())

	send("*foo\r\n")
	require.Equal(t, "-invalid command\r\n", readLine())

	// each line of a malformed array is answered on its own
	send("*1\r\n$9223372036854775807\r\nabc\r\ncount\r\n")
	for i := 0; i < 3; i++ {
		require.Equal(t, "-invalid command\r\n", readLine())
	}
	require.Equal(t, ":0\r\n", readLine())

	require.NoError(t, s.Stop())
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}
