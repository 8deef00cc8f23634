// Package bpetok adapts the tokenizer facade to a streaming
// interface, for callers that receive input in chunks (a chat
// client reading a socket, say) rather than one complete buffer.
package bpetok

// Backend is the subset of the tokenizer facade a streaming Encoder
// needs: tokenize a buffer, and report how many raw bytes the
// longest token in the vocabulary can represent.
type Backend interface {
	EncodeInto(text []byte, out []uint32) ([]uint32, error)
	MaxTokenLen() int
	TokenByteLen(id uint32) int
}

// Decodable is the subset needed to turn token ids back into bytes.
type Decodable interface {
	Decode(ids []uint32) []byte
}

// Encoder interface
type Encoder interface {
	/*
		Feed consumes the next chunk of raw bytes from the input stream. It may emit zero or more
		completed token IDs.
		The returned slice is allowed to alias internal memory (zero-copy) so the caller must treat it as read-only
		and make a copy if they want edits.
	*/
	Feed(chunk []byte) []uint32

	/*
		Flush tells the encoder that the stream is complete. It returns any remaining token IDs that were buffered
		because they were being waited on to see if there are more merges to apply on them. After flush, the encoder
		is reset to a clean state and can be reused for a new stream.
	*/
	Flush() []uint32
}

// Decoder interface, no need for flush right now because we won't be maintaining internal buffer
type Decoder interface {
	/*
		Feed consumes token IDs and returns zero or more decoded bytes. Same as the encoder, there is a zero-copy rule;
		returned slice can alias internal memory, call must treat it as read-only
	*/
	Feed(tokens []uint32) []byte
}

// Tokenizer wraps a loaded facade tokenizer (CL100K or GPT2) for
// streaming use.
type Tokenizer struct {
	backend Backend
	decode  Decodable
}

// New wraps a loaded tokenizer backend for streaming use. Callers
// pass the same *tokenizer.CL100K or *tokenizer.GPT2 for both
// arguments; they satisfy both interfaces.
func New(backend Backend, decode Decodable) *Tokenizer {
	return &Tokenizer{backend: backend, decode: decode}
}

// NewEncoder returns a fresh streaming encoder over this tokenizer's
// vocabulary.
func (t *Tokenizer) NewEncoder() Encoder {
	tail := t.backend.MaxTokenLen() - 1
	if tail < 0 {
		tail = 0
	}
	return &encoderState{backend: t.backend, tailReserve: tail}
}

// NewDecoder returns a streaming decoder over this tokenizer's
// vocabulary.
func (t *Tokenizer) NewDecoder() Decoder {
	return &decoderState{decode: t.decode}
}

type decoderState struct {
	decode Decodable
}

func (d *decoderState) Feed(tokens []uint32) []byte {
	if len(tokens) == 0 {
		return nil
	}
	return d.decode.Decode(tokens)
}
