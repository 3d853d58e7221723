package parser

import "github.com/lunacookies/eldiro/syntax"

// sink materializes the event list into a concrete tree. It owns its own
// cursor over the full token slice, so trivia the parser skipped is
// re-inserted here: after every event, pending trivia attaches to the
// innermost open node.
type sink struct {
	builder *syntax.Builder
	events  []event
	tokens  []syntax.Token
	cursor  int
	depth   int
}

func newSink(events []event, tokens []syntax.Token) *sink {
	return &sink{
		builder: syntax.NewBuilder(),
		events:  events,
		tokens:  tokens,
	}
}

func (s *sink) finish() *syntax.Node {
	for idx := range s.events {
		switch s.events[idx].kind {
		case eventStartNode:
			// Follow the forward-parent chain, then start the
			// outermost node first. Visited events are blanked so
			// they are not applied twice.
			kinds := []syntax.Kind{s.events[idx].nodeKind}

			fp := s.events[idx].forwardParent
			for fp != noForwardParent {
				kinds = append(kinds, s.events[fp].nodeKind)
				next := s.events[fp].forwardParent
				s.events[fp] = event{kind: eventPlaceholder}
				fp = next
			}

			for i := len(kinds) - 1; i >= 0; i-- {
				s.builder.StartNode(kinds[i])
				s.depth++
			}
		case eventAddToken:
			s.token()
		case eventFinishNode:
			s.builder.FinishNode()
			s.depth--
		case eventPlaceholder:
		}

		s.eatTrivia()
	}

	return s.builder.Finish()
}

func (s *sink) token() {
	s.builder.Token(s.tokens[s.cursor])
	s.cursor++
}

func (s *sink) eatTrivia() {
	if s.depth == 0 {
		return
	}

	for s.cursor < len(s.tokens) && s.tokens[s.cursor].Kind.IsTrivia() {
		s.token()
	}
}
