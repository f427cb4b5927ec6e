// Package parser turns the raw three-section response text produced by the
// text-generation collaborator into a structured record the game engine can
// execute. Parsing degrades instead of failing: missing markers yield empty
// sections and a NO_ACTION command, and nothing the collaborator emits can
// make Parse panic or return an error.
package parser

import "strings"

const (
	markerAnalysis = "[ANALYSIS]"
	markerAction   = "[ACTION]"
	markerDialogue = "[DIALOGUE]"
)

// Action is the structured command extracted from the [ACTION] section.
type Action struct {
	Type      string
	Target    string
	Parameter string
	Value     string
}

// Interaction is the machine-actionable interpretation of one NPC turn.
type Interaction struct {
	Analysis string
	Action   Action
	Dialogue string
}

// NoAction is the command recorded when the response carries no recognizable
// action: observe, do nothing.
func NoAction() Action {
	return Action{Type: "NO_ACTION", Target: "None", Parameter: "None", Value: "None"}
}

// degraded is the sentinel record returned when parsing itself blows up.
// The action fields distinguish it from an ordinary NO_ACTION turn.
func degraded() Interaction {
	return Interaction{
		Analysis: "Internal error: the response could not be parsed.",
		Action:   Action{Type: "NO_ACTION", Target: "Parsing", Parameter: "Failure", Value: "N/A"},
		Dialogue: "Internal error: the response could not be parsed.",
	}
}

// Parse extracts the [ANALYSIS], [ACTION] and [DIALOGUE] sections from raw.
// Sections are located by the first occurrence of each literal marker; a
// section whose markers are missing or out of order comes back empty. Any
// panic during extraction is converted into the degradation sentinel, so the
// caller never has to guard a parse.
func Parse(raw string) (out Interaction) {
	defer func() {
		if r := recover(); r != nil {
			out = degraded()
		}
	}()
	out = Interaction{Action: NoAction()}

	analysisAt := strings.Index(raw, markerAnalysis)
	actionAt := strings.Index(raw, markerAction)
	dialogueAt := strings.Index(raw, markerDialogue)

	if analysisAt != -1 && actionAt != -1 && actionAt > analysisAt {
		out.Analysis = strings.TrimSpace(raw[analysisAt+len(markerAnalysis) : actionAt])
	}
	if actionAt != -1 && dialogueAt != -1 && dialogueAt > actionAt {
		out.Action = parseActionLine(strings.TrimSpace(raw[actionAt+len(markerAction) : dialogueAt]))
	}
	if dialogueAt != -1 {
		out.Dialogue = strings.TrimSpace(raw[dialogueAt+len(markerDialogue):])
	}
	return out
}

// Keys of the keyed fallback form. A segment like "ACTION_TYPE: BETRAY"
// assigns the named field instead of being read positionally.
const (
	keyActionType = "ACTION_TYPE"
	keyTarget     = "TARGET"
	keyParameter  = "PARAMETER"
	keyValue      = "VALUE"
)

func isReservedKey(segment string) bool {
	head, _, ok := strings.Cut(segment, ":")
	if !ok {
		return false
	}
	switch strings.ToUpper(strings.TrimSpace(head)) {
	case keyActionType, keyTarget, keyParameter, keyValue:
		return true
	}
	return false
}

// parseActionLine interprets the [ACTION] payload. The preferred shape is
// exactly two ';'-separated segments with one ':' each:
//
//	GRANT_ACCESS: Player; LEVEL: 2  ->  {GRANT_ACCESS, Player, LEVEL, 2}
//
// Anything else falls back to scanning segments for the named keys
// ACTION_TYPE/TARGET/PARAMETER/VALUE (case-insensitive), ignoring unknown
// keys. A line with no usable structure yields NoAction.
func parseActionLine(line string) Action {
	act := NoAction()
	if line == "" {
		return act
	}
	segments := strings.Split(line, ";")

	if len(segments) == 2 &&
		strings.Count(segments[0], ":") == 1 &&
		strings.Count(segments[1], ":") == 1 &&
		!isReservedKey(segments[0]) && !isReservedKey(segments[1]) {
		typePart, targetPart, _ := strings.Cut(segments[0], ":")
		paramPart, valuePart, _ := strings.Cut(segments[1], ":")
		act.Type = strings.TrimSpace(typePart)
		act.Target = strings.TrimSpace(targetPart)
		act.Parameter = strings.TrimSpace(paramPart)
		act.Value = strings.TrimSpace(valuePart)
		return act
	}

	for _, seg := range segments {
		head, tail, ok := strings.Cut(seg, ":")
		if !ok {
			continue
		}
		value := strings.TrimSpace(tail)
		switch strings.ToUpper(strings.TrimSpace(head)) {
		case keyActionType:
			act.Type = value
		case keyTarget:
			act.Target = value
		case keyParameter:
			act.Parameter = value
		case keyValue:
			act.Value = value
		}
	}
	return act
}
