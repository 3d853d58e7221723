package parser

import "github.com/lunacookies/eldiro/syntax"

// The parser never builds a tree; it appends events describing tree shape,
// and the sink replays them. forwardParent is the one non-linear link: it
// lets an already-completed node become the child of a node that is only
// discovered later (infix wrapping).

type eventKind int

const (
	eventPlaceholder eventKind = iota
	eventStartNode
	eventAddToken
	eventFinishNode
)

const noForwardParent = -1

type event struct {
	kind          eventKind
	nodeKind      syntax.Kind
	forwardParent int // absolute event index, or noForwardParent
}

// marker remembers a reserved slot in the event list so a node's StartNode
// can be written after its extent is known.
type marker struct {
	pos int
}

func (p *parser) start() marker {
	pos := len(p.events)
	p.events = append(p.events, event{kind: eventPlaceholder})

	return marker{pos: pos}
}

func (m marker) complete(p *parser, kind syntax.Kind) completedMarker {
	p.events[m.pos] = event{
		kind:          eventStartNode,
		nodeKind:      kind,
		forwardParent: noForwardParent,
	}
	p.events = append(p.events, event{kind: eventFinishNode})

	return completedMarker{pos: m.pos}
}

// completedMarker allows a finished node to be wrapped retroactively.
type completedMarker struct {
	pos int
}

func (cm completedMarker) precede(p *parser) marker {
	m := p.start()
	p.events[cm.pos].forwardParent = m.pos

	return m
}
