package term

// scanBuffer holds the scanner's read buffer and the four cursors that
// track it: tokenStart <= tokenEnd <= cursor <= filled <= len(data).
// Bytes between cursor and filled are unread; bytes between tokenStart
// and tokenEnd are the token accumulated so far.
type scanBuffer struct {
	data       []byte
	tokenStart int
	tokenEnd   int
	cursor     int
	filled     int
}

func newScanBuffer(size int) *scanBuffer {
	return &scanBuffer{data: make([]byte, size)}
}

func (b *scanBuffer) reset() {
	b.tokenStart, b.tokenEnd, b.cursor, b.filled = 0, 0, 0, 0
}

// startToken synchronizes the token bounds with the cursor, discarding
// whatever the previous token held.
func (b *scanBuffer) startToken() {
	b.tokenStart = b.cursor
	b.tokenEnd = b.cursor
}

func (b *scanBuffer) isReadable() bool { return b.cursor < b.filled }

// peek returns the next unread byte without consuming it.
func (b *scanBuffer) peek() (byte, bool) {
	if b.cursor < b.filled {
		return b.data[b.cursor], true
	}
	return 0, false
}

// consume advances past the byte most recently returned by peek.
func (b *scanBuffer) consume() { b.cursor++ }

// retain appends the most recently consumed byte to the current token.
func (b *scanBuffer) retain() {
	if b.tokenStart == b.tokenEnd {
		b.tokenStart = b.cursor - 1
		b.tokenEnd = b.cursor
		return
	}
	if b.tokenEnd+1 < b.cursor {
		b.data[b.tokenEnd] = b.data[b.cursor-1]
	}
	b.tokenEnd++
}

// token returns the accumulated token payload.
func (b *scanBuffer) token() []byte { return b.data[b.tokenStart:b.tokenEnd] }

// peekMany returns all unread bytes, for byte-reader-style access
// between tokens.
func (b *scanBuffer) peekMany() []byte { return b.data[b.cursor:b.filled] }

func (b *scanBuffer) consumeMany(count int) {
	b.cursor += count
	if b.cursor > b.filled {
		b.cursor = b.filled
	}
}

// isFragmented reports whether there is reclaimable space before the
// token or between the token and the cursor.
func (b *scanBuffer) isFragmented() bool { return b.tokenStart > 0 || b.tokenEnd < b.cursor }

func (b *scanBuffer) hasCapacity() bool { return b.filled < len(b.data) }

// isExhausted reports whether the buffer has nothing left to read, no
// reclaimable space, and no spare capacity to fill more into.
func (b *scanBuffer) isExhausted() bool {
	return !b.isReadable() && !b.isFragmented() && !b.hasCapacity()
}

// defrag shifts the token and any unread bytes down to the start of the
// buffer, maximizing contiguous free space at the end.
func (b *scanBuffer) defrag() {
	tokenLen := b.tokenEnd - b.tokenStart
	if b.tokenStart > 0 && tokenLen > 0 {
		copy(b.data[0:tokenLen], b.data[b.tokenStart:b.tokenEnd])
	}
	unreadLen := b.filled - b.cursor
	if tokenLen < b.cursor && unreadLen > 0 {
		copy(b.data[tokenLen:tokenLen+unreadLen], b.data[b.cursor:b.filled])
	}
	b.tokenStart = 0
	b.tokenEnd = tokenLen
	b.cursor = tokenLen
	b.filled = tokenLen + unreadLen
}

// fillFrom reads as much as fits into the buffer's spare capacity from
// one call to reader.
func (b *scanBuffer) fillFrom(reader func([]byte) (int, error)) (int, error) {
	n, err := reader(b.data[b.filled:])
	b.filled += n
	return n, err
}
