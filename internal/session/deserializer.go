package session

import (
	"bufio"
	"bytes"
	"fmt"
	"strconv"
)

var crlf = []byte("\r\n")

// readLength parses the "<prefix><n>\r\n" header at the start of t and
// returns n and the header size, or ok=false.
func readLength(t []byte, prefix byte) (n, size int, ok bool) {
	if len(t) == 0 || t[0] != prefix {
		return 0, 0, false
	}
	hdr := bytes.Index(t, crlf)
	// "$\r\n" carries no length
	if hdr < 2 {
		return 0, 0, false
	}
	n, err := strconv.Atoi(string(t[1:hdr]))
	if err != nil || n < 0 {
		return 0, 0, false
	}
	return n, hdr + len(crlf), true
}

func eatBulkString(data []byte, c int) (bytesAte int) {
	t := data[c:]
	// minimum valid empty string
	if len(t) < len("$0\r\n\r\n") {
		return
	}
	n, size, ok := readLength(t, '$')
	if !ok {
		return
	}
	// body and trailing CRLF must fit in what is left
	if n > len(t)-size-len(crlf) {
		return
	}
	end := size + n
	if len(t) < end+len(crlf) || !bytes.Equal(t[end:end+len(crlf)], crlf) {
		return
	}
	bytesAte = end + len(crlf)
	return
}

func eatArray(data []byte, c int) (bytesAte int) {
	t := data[c:]
	// minimum valid empty array
	if len(t) < len("*0\r\n") {
		return
	}
	n, ct, ok := readLength(t, '*')
	if !ok {
		return
	}
	for i := 0; i < n; i++ {
		cc := eatBulkString(t, ct)
		if cc == 0 {
			return
		}
		ct += cc
	}
	bytesAte = c + ct
	return
}

func parseBulkString(t []byte) string {
	n, size, _ := readLength(t, '$')
	return string(t[size : size+n])
}

func parseArray(data []byte) ([]any, error) {
	if eatArray(data, 0) == 0 {
		return nil, fmt.Errorf("not an array of bulk strings: %q", data)
	}
	n, c, _ := readLength(data, '*')
	res := make([]any, 0, n)
	for i := 0; i < n; i++ {
		cc := eatBulkString(data, c)
		res = append(res, parseBulkString(data[c:c+cc]))
		c += cc
	}
	return res, nil
}

// badArray reports whether data, which starts with '*', can never become a
// complete array of bulk strings no matter how much more input arrives.
func badArray(data []byte) bool {
	nl := bytes.IndexByte(data, '\n')
	if nl < 0 {
		return false
	}
	if !bytes.HasSuffix(data[:nl+1], crlf) {
		return true
	}
	n, c, ok := readLength(data, '*')
	if !ok {
		return true
	}
	for i := 0; i < n; i++ {
		t := data[c:]
		if bytes.IndexByte(t, '\n') < 0 {
			return false
		}
		l, size, ok := readLength(t, '$')
		// a bulk string longer than one scanner token never arrives whole
		if !ok || l > bufio.MaxScanTokenSize {
			return true
		}
		if l > len(t)-size-len(crlf) {
			return false
		}
		if !bytes.Equal(t[size+l:size+l+len(crlf)], crlf) {
			return true
		}
		c += size + l + len(crlf)
	}
	return false
}

// SplitMessages is a bufio.SplitFunc that yields one command per token: a whole
// RESP array when the input starts with '*', a line otherwise.
func SplitMessages(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}

	// Clients send commands as an array of bulk strings.
	if data[0] == '*' {
		// a complete array splits off here, which keeps pipelined commands apart
		if c := eatArray(data, 0); c > 0 {
			return c, data[:c], nil
		}
		// An inline line that merely starts with '*' is split like any other line.
		if badArray(data) {
			return bufio.ScanLines(data, atEOF)
		}
		// Not a valid array at EOF: hand the rest over as-is, it may still be
		// an inline command.
		if atEOF {
			return len(data), data, nil
		}
		// Request more data
		return 0, nil, nil
	}
	return bufio.ScanLines(data, atEOF)
}
