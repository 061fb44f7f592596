package domain

import (
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Cursor marks the last-seen position in the article stream: the
// (publishedAt, articleID) pair of the final row of the previous page.
// Ordering is (publishedAt DESC, id DESC), so the next page selects rows
// strictly less than the cursor under that ordering. Clients treat the
// encoded form as opaque and echo it back verbatim.
type Cursor struct {
	PublishedAt time.Time
	ArticleID   int64
}

// Encode returns the opaque wire form of the cursor. Microsecond precision
// matches the stored timestamps, so no row can fall between the last page's
// final row and the next page's row comparison.
func (c Cursor) Encode() string {
	raw := fmt.Sprintf("%d:%d", c.PublishedAt.UnixMicro(), c.ArticleID)
	return base64.RawURLEncoding.EncodeToString([]byte(raw))
}

// DecodeCursor parses an encoded cursor. An empty string means first page.
func DecodeCursor(s string) (*Cursor, error) {
	if s == "" {
		return nil, nil
	}
	raw, err := base64.RawURLEncoding.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("decode cursor: %w", err)
	}
	ts, id, ok := strings.Cut(string(raw), ":")
	if !ok {
		return nil, fmt.Errorf("decode cursor: missing separator")
	}
	micros, err := strconv.ParseInt(ts, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("decode cursor: %w", err)
	}
	articleID, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("decode cursor: %w", err)
	}
	return &Cursor{
		PublishedAt: time.UnixMicro(micros).UTC(),
		ArticleID:   articleID,
	}, nil
}
