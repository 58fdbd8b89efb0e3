package llmprovider

import (
	"github.com/pkoukk/tiktoken-go"
)

// DefaultEncoding is the BPE used for local token estimates.
const DefaultEncoding = "cl100k_base"

// TokenCounter estimates the token length of a text.
type TokenCounter interface {
	CountTokens(text string) int
}

// Tokenizer counts tokens with a tiktoken encoding.
type Tokenizer struct {
	encoding *tiktoken.Tiktoken
}

// NewTokenizer loads the named encoding (DefaultEncoding when empty).
func NewTokenizer(encoding string) (*Tokenizer, error) {
	if encoding == "" {
		encoding = DefaultEncoding
	}
	tkm, err := tiktoken.GetEncoding(encoding)
	if err != nil {
		return nil, err
	}
	return &Tokenizer{encoding: tkm}, nil
}

// CountTokens returns the number of tokens in text.
func (t *Tokenizer) CountTokens(text string) int {
	return len(t.encoding.Encode(text, nil, nil))
}

// estimateUsage fills usage from the request and completion text when the
// provider reported nothing.
func estimateUsage(tc TokenCounter, req *Request, text string) *Usage {
	in := tc.CountTokens(req.SystemInstruction)
	for _, m := range req.Messages {
		in += tc.CountTokens(m.Text)
	}
	out := tc.CountTokens(text)
	return &Usage{
		InputTokens:  in,
		OutputTokens: out,
		TotalTokens:  in + out,
		Estimated:    true,
	}
}
