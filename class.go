package hxaudio

import "strings"

// Class identifies the shape of an entry's body and its registered
// read/write routine.
type Class int

const (
	ClassInvalid Class = iota
	ClassEventResData
	ClassWavResData
	ClassSwitchResData
	ClassRandomResData
	ClassProgramResData
	ClassWaveFileIdObj
)

// classInfo describes how a Class's serialized name is formed: whether the
// variant's platform tag is embedded in it, and the fragment that follows.
type classInfo struct {
	fragment     string
	crossVersion bool // true: name omits the platform tag
}

var classRegistry = map[Class]classInfo{
	ClassEventResData:   {fragment: "EventResData", crossVersion: true},
	ClassWavResData:     {fragment: "WavResData", crossVersion: false},
	ClassSwitchResData:  {fragment: "SwitchResData", crossVersion: true},
	ClassRandomResData:  {fragment: "RandomResData", crossVersion: true},
	ClassProgramResData: {fragment: "ProgramResData", crossVersion: true},
	ClassWaveFileIdObj:  {fragment: "WaveFileIdObj", crossVersion: false},
}

// platformTags lists every tag that must be stripped while parsing a class
// name, ordered longest-first so "XBox" isn't mistaken for a prefix match
// against a shorter tag.
var platformTags = []string{"XBox", "PS2", "PS3", "GC", "PC"}

// ClassName formats c's serialized class name for the given variant, e.g.
// "CPS2WavResData" or "CEventResData" for a cross-version class.
func (c Class) ClassName(v Variant) string {
	info, ok := classRegistry[c]
	if !ok {
		return ""
	}
	if info.crossVersion {
		return "C" + info.fragment
	}
	return "C" + v.PlatformTag() + info.fragment
}

// ParseClassName recovers a Class from its serialized name, stripping a
// leading "C" and any recognized variant platform-tag prefix. It returns
// ClassInvalid, false for a name with no registered fragment — the
// container read path treats this as ErrUnknownClass: a warn-and-skip
// condition, not a failure.
func ParseClassName(name string) (Class, bool) {
	if !strings.HasPrefix(name, "C") {
		return ClassInvalid, false
	}
	rest := name[1:]
	for _, tag := range platformTags {
		if strings.HasPrefix(rest, tag) {
			rest = strings.TrimPrefix(rest, tag)
			break
		}
	}
	for class, info := range classRegistry {
		if info.fragment == rest {
			return class, true
		}
	}
	return ClassInvalid, false
}

// crossVersion reports whether c's serialized name omits the platform tag.
func (c Class) crossVersion() bool {
	return classRegistry[c].crossVersion
}
