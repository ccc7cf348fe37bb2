package core

import (
	"fmt"
	"math"

	"github.com/foxglove-labs/pdflex/common"
	"github.com/foxglove-labs/pdflex/internal/itemsource"
)

// TokenPeekCapacity is the ring buffer size used for an ObjectParser's
// token provider, per spec.md §4.2's "5 for tokens" suggestion: large
// enough to cover the 3-token indirect-reference/indirect-object
// lookahead (spec.md §4.5) with two tokens of margin.
const TokenPeekCapacity = 5

// MaxContextStackDepth bounds the object parser's context stack, per
// spec.md §5's suggested cap of 1024; deeper nesting is a fatal
// error rather than unbounded memory growth.
const MaxContextStackDepth = 1024

type frameKind int

const (
	frameRoot frameKind = iota
	frameArray
	frameDictionary
	frameIndirectObject
)

type dictState int

const (
	dictExpectingKey dictState = iota
	dictExpectingValue
)

// frame is one entry of the object parser's explicit context stack,
// per spec.md §4.5 and the "context-stack polymorphism" design note in
// §9: a tagged struct that owns its children directly, replacing the
// teacher's dynamic dispatch over an "abstract PdfObject-with-Add"
// with a plain switch on frameKind.
type frame struct {
	kind frameKind

	// frameRoot
	rootChild PdfObject
	rootDone  bool

	// frameArray
	array *PdfArray

	// frameDictionary
	dict       *PdfDictionary
	dictState  dictState
	pendingKey PdfName

	// frameIndirectObject
	objNumber     uint32
	generation    uint16
	indirectChild PdfObject
}

// ObjectParserOption configures an ObjectParser at construction time.
type ObjectParserOption func(*ObjectParser)

// WithStrictDictionaryKeys makes the parser raise
// ParseError.UnexpectedToken when a non-name token appears while a
// dictionary is expecting a key, instead of silently discarding it.
// This is spec.md §9 Open Question 1's configurable strictness
// setting; the default (this option unset) matches the lenient
// behavior spec.md describes as the baseline.
func WithStrictDictionaryKeys() ObjectParserOption {
	return func(p *ObjectParser) { p.strictDictKeys = true }
}

// ObjectParser assembles a buffered token provider into PdfObject
// values using an explicit context stack, per spec.md §4.5. It is not
// safe for concurrent use, and a single ObjectParser owns its token
// provider exclusively (spec.md §5).
//
// Grounded on the teacher's core.PdfParser.parseObject/ParseDict/
// parseArray/ParseIndirectObject (core/parser.go), restructured around
// the frame-stack design note in spec.md §9 instead of the teacher's
// recursive-descent-with-regex-lookahead approach.
type ObjectParser struct {
	tokens *itemsource.Provider[Token]

	strictDictKeys bool

	stack []*frame
}

// NewObjectParser creates an ObjectParser consuming tokens from
// provider, which must support at least TokenPeekCapacity of
// lookahead.
func NewObjectParser(tokens *itemsource.Provider[Token], opts ...ObjectParserOption) *ObjectParser {
	p := &ObjectParser{tokens: tokens}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// ParseObject returns the first complete top-level PdfObject from the
// token stream, per spec.md's external interface
// `parse_object(tokens) -> PdfObject`. Excess tokens after the first
// complete object are left unconsumed.
func (p *ObjectParser) ParseObject() (PdfObject, error) {
	p.stack = []*frame{{kind: frameRoot}}

	for {
		root := p.stack[0]
		if root.rootDone && len(p.stack) == 1 {
			return root.rootChild, nil
		}
		if len(p.stack) > MaxContextStackDepth {
			return nil, newError(KindStackUnderflow, "context stack exceeded maximum nesting depth")
		}
		if !p.tokens.HasNext() {
			return nil, newError(KindStackUnderflow, "token stream ended before a complete top-level object was parsed")
		}

		if consumed, err := p.tryConsumeIndirectLookahead(); err != nil {
			return nil, err
		} else if consumed {
			continue
		}

		tok := p.tokens.Next()
		if err := p.dispatch(tok); err != nil {
			common.Log.Debug("objparser: %v", err)
			return nil, err
		}
	}
}

// ParseIndirectObject expects the first top-level object to be a
// *PdfIndirectObject matching the given identifier, and returns its
// inner value. Mismatched identifier is fatal (ParseError.TypeMismatch),
// per spec.md's external interface
// `parse_indirect_object(tokens, expected_object_number, expected_generation) -> T`.
func (p *ObjectParser) ParseIndirectObject(expectedObjectNumber uint32, expectedGeneration uint16) (PdfObject, error) {
	obj, err := p.ParseObject()
	if err != nil {
		return nil, err
	}
	ind, ok := obj.(*PdfIndirectObject)
	if !ok {
		return nil, newError(KindTypeMismatch, "first top-level object is not an indirect object")
	}
	if ind.ObjectNumber != expectedObjectNumber || ind.Generation != expectedGeneration {
		return nil, newError(KindTypeMismatch, fmt.Sprintf(
			"indirect object identifier mismatch: got %d %d, expected %d %d",
			ind.ObjectNumber, ind.Generation, expectedObjectNumber, expectedGeneration))
	}
	return ind.Value, nil
}

// ParseIndirectStream is ParseIndirectObject specialized to the
// common case of expecting a stream value, type-asserting the result.
func (p *ObjectParser) ParseIndirectStream(expectedObjectNumber uint32, expectedGeneration uint16) (*PdfStream, error) {
	val, err := p.ParseIndirectObject(expectedObjectNumber, expectedGeneration)
	if err != nil {
		return nil, err
	}
	stream, ok := val.(*PdfStream)
	if !ok {
		return nil, newError(KindTypeMismatch, "indirect object value is not a stream")
	}
	return stream, nil
}

// ParseIndirectDictionary is ParseIndirectObject specialized to the
// common case of expecting a dictionary value, type-asserting the
// result.
func (p *ObjectParser) ParseIndirectDictionary(expectedObjectNumber uint32, expectedGeneration uint16) (*PdfDictionary, error) {
	val, err := p.ParseIndirectObject(expectedObjectNumber, expectedGeneration)
	if err != nil {
		return nil, err
	}
	dict, ok := val.(*PdfDictionary)
	if !ok {
		return nil, newError(KindTypeMismatch, "indirect object value is not a dictionary")
	}
	return dict, nil
}

// tryConsumeIndirectLookahead implements spec.md §4.5's "3-token
// lookahead rule (highest priority)": two NumericInteger tokens
// followed by either an IndirectReferenceMarker or an
// IndirectObjectBegin are consumed together, before the ordinary
// per-token dispatch ever sees them.
func (p *ObjectParser) tryConsumeIndirectLookahead() (bool, error) {
	tok0 := p.tokens.Peek(0)
	if tok0.Kind != TokenNumericInteger {
		return false, nil
	}
	tok1 := p.tokens.Peek(1)
	if tok1.Kind != TokenNumericInteger {
		return false, nil
	}
	tok2 := p.tokens.Peek(2)

	switch tok2.Kind {
	case TokenIndirectReferenceMarker:
		objNum, gen, err := identifierPair(tok0, tok1)
		if err != nil {
			return false, err
		}
		p.tokens.Consume(3)
		return true, p.addChild(PdfIndirectReference{ObjectNumber: objNum, Generation: gen})
	case TokenIndirectObjectBegin:
		objNum, gen, err := identifierPair(tok0, tok1)
		if err != nil {
			return false, err
		}
		p.tokens.Consume(3)
		common.Log.Trace("objparser: entering indirect object %d %d", objNum, gen)
		p.push(&frame{kind: frameIndirectObject, objNumber: objNum, generation: gen})
		return true, nil
	default:
		return false, nil
	}
}

// identifierPair validates and converts an object-number/generation
// token pair, per spec.md §4.5: "Object and generation numbers must
// fit in u32 and u16 respectively; otherwise fatal."
func identifierPair(objTok, genTok Token) (uint32, uint16, error) {
	if objTok.Int < 0 || objTok.Int > math.MaxUint32 {
		return 0, 0, newErrorAt(KindIdentifierOverflow, objTok.StartIndex, "object number out of range")
	}
	if genTok.Int < 0 || genTok.Int > math.MaxUint16 {
		return 0, 0, newErrorAt(KindIdentifierOverflow, genTok.StartIndex, "generation number out of range")
	}
	return uint32(objTok.Int), uint16(genTok.Int), nil
}

// dispatch handles one token per spec.md §4.5's dispatch table, once
// the indirect-reference/indirect-object lookahead has ruled itself
// out.
func (p *ObjectParser) dispatch(tok Token) error {
	switch tok.Kind {
	case TokenNull:
		return p.addChild(PdfNull{})
	case TokenBoolean:
		return p.addChild(PdfBoolean(tok.Bool))
	case TokenNumericInteger:
		return p.addChild(PdfInteger(tok.Int))
	case TokenNumericReal:
		return p.addChild(NewPdfReal(tok.Real))
	case TokenString:
		return p.addChild(MakePdfString(tok.Bytes))
	case TokenName:
		return p.addChild(MakePdfName(tok.Bytes))
	case TokenComment, TokenHeaderComment, TokenBinaryIndicatorComment:
		// Comments are skipped by the object parser even though the
		// tokeniser preserves them, per spec.md §9 Open Question 5.
		return nil
	case TokenArrayBegin:
		p.push(&frame{kind: frameArray, array: MakePdfArray()})
		return nil
	case TokenArrayEnd:
		top, err := p.pop()
		if err != nil {
			return err
		}
		if top.kind != frameArray {
			return newErrorAt(KindContextMismatch, tok.StartIndex, "']' does not match an open array")
		}
		return p.addChild(top.array)
	case TokenDictionaryBegin:
		p.push(&frame{kind: frameDictionary, dict: MakePdfDictionary()})
		return nil
	case TokenDictionaryEnd:
		top, err := p.pop()
		if err != nil {
			return err
		}
		if top.kind != frameDictionary {
			return newErrorAt(KindContextMismatch, tok.StartIndex, "'>>' does not match an open dictionary")
		}
		// A dangling key with no following value is silently dropped
		// (spec.md §9 Open Question 2): top.dict already excludes it,
		// since a key is only ever Set once its value is seen.
		return p.addChild(top.dict)
	case TokenIndirectObjectEnd:
		top, err := p.pop()
		if err != nil {
			return err
		}
		if top.kind != frameIndirectObject {
			return newErrorAt(KindContextMismatch, tok.StartIndex, "'endobj' does not match an open indirect object")
		}
		return p.addChild(&PdfIndirectObject{
			ObjectNumber: top.objNumber,
			Generation:   top.generation,
			Value:        top.indirectChild,
		})
	case TokenStreamBegin:
		return p.promoteStream(tok)
	case TokenIndirectObjectBegin:
		// Reachable only via malformed input: a bare "obj" not
		// preceded by two integer tokens. The lookahead rule consumes
		// every well-formed occurrence (spec.md §4.5's dispatch
		// table: "unreachable here").
		return newErrorAt(KindUnexpectedToken, tok.StartIndex, "'obj' not preceded by an object number and generation")
	default:
		return newErrorAt(KindUnexpectedToken, tok.StartIndex, fmt.Sprintf("unexpected token %s", tok.Kind))
	}
}

// promoteStream implements spec.md §4.5's stream promotion: the
// current top context must be an IndirectObject holding a dictionary
// child; it is replaced in place with a PdfStream and the
// IndirectObject context is popped immediately, since the tokeniser
// has already halted and no endstream/endobj tokens will follow.
func (p *ObjectParser) promoteStream(tok Token) error {
	if len(p.stack) == 0 {
		return newErrorAt(KindMissingStreamDictionary, tok.StartIndex, "'stream' with no open indirect object")
	}
	top := p.stack[len(p.stack)-1]
	if top.kind != frameIndirectObject {
		return newErrorAt(KindMissingStreamDictionary, tok.StartIndex, "'stream' with no open indirect object")
	}
	dict, ok := top.indirectChild.(*PdfDictionary)
	if !ok {
		return newErrorAt(KindMissingStreamDictionary, tok.StartIndex, "missing or invalid stream dictionary")
	}

	stream := &PdfStream{
		ObjectNumber:     top.objNumber,
		Generation:       top.generation,
		Dictionary:       dict,
		StreamStartIndex: uint64(tok.StreamStartIndex),
	}
	p.stack = p.stack[:len(p.stack)-1]
	return p.addChild(&PdfIndirectObject{
		ObjectNumber: stream.ObjectNumber,
		Generation:   stream.Generation,
		Value:        stream,
	})
}

// addChild adds obj to whatever container is currently on top of the
// stack, per spec.md §4.5's per-container rules.
func (p *ObjectParser) addChild(obj PdfObject) error {
	top := p.stack[len(p.stack)-1]
	switch top.kind {
	case frameRoot:
		top.rootChild = obj
		top.rootDone = true
		return nil
	case frameArray:
		top.array.Append(obj)
		return nil
	case frameDictionary:
		return p.addDictionaryChild(top, obj)
	case frameIndirectObject:
		top.indirectChild = obj
		return nil
	default:
		return newError(KindUnexpectedToken, "no active container accepts a child")
	}
}

// addDictionaryChild implements the dictionary container's two-state
// machine, per spec.md §4.5:
//   - expecting-key: only a Name is legal; anything else is silently
//     discarded (spec.md §9 Open Question 1), unless strict mode is
//     enabled.
//   - expecting-value: any object completes the pair; a PdfNull value
//     causes the pair to be dropped entirely, never inserted.
func (p *ObjectParser) addDictionaryChild(f *frame, obj PdfObject) error {
	if f.dictState == dictExpectingKey {
		name, ok := obj.(PdfName)
		if !ok {
			if p.strictDictKeys {
				return newError(KindUnexpectedToken, "expected a dictionary key (Name), got a value while expecting a key")
			}
			return nil
		}
		f.pendingKey = name
		f.dictState = dictExpectingValue
		return nil
	}

	if _, isNull := obj.(PdfNull); isNull {
		f.dictState = dictExpectingKey
		return nil
	}
	f.dict.Set(f.pendingKey, obj)
	f.dictState = dictExpectingKey
	return nil
}

// push opens a new container context on top of the stack.
func (p *ObjectParser) push(f *frame) {
	p.stack = append(p.stack, f)
}

// pop closes the top container context and returns it.
// ParseError.StackUnderflow is raised if only the root sentinel
// remains (a close without any matching open).
func (p *ObjectParser) pop() (*frame, error) {
	if len(p.stack) <= 1 {
		return nil, newError(KindStackUnderflow, "close without a matching open")
	}
	top := p.stack[len(p.stack)-1]
	p.stack = p.stack[:len(p.stack)-1]
	return top, nil
}
