package claude

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// DefaultFileName is the name of the Claude configuration document in the home directory.
const DefaultFileName = ".claude.json"

// DefaultIndent is the number of spaces used per nesting level when writing.
const DefaultIndent = 2

const (
	projectsKey = "projects"
	historyKey  = "history"
)

// emptyHistory is the serialized form of a cleared history.
var emptyHistory = json.RawMessage("[]")

// fields holds a JSON object as ordered raw values so that anything the
// cleaner does not touch is written back exactly as it was read.
type fields = orderedmap.OrderedMap[string, json.RawMessage]

// Document is an in-memory Claude configuration document.
type Document struct {
	fields   *fields
	projects *orderedmap.OrderedMap[string, *Project]
}

// Project is a single entry of the document's projects object.
type Project struct {
	fields  *fields
	history []json.RawMessage
}

// ProjectSummary reports the history size of one project.
type ProjectSummary struct {
	ID         string
	HistoryLen int
}

// Load reads and validates the document at path.
//
// It returns ErrNotFound when path is missing or is a directory, ErrParse for
// malformed JSON and a *StructureError when the projects object is missing or
// malformed.
func Load(path string) (*Document, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%w: %s is a directory", ErrNotFound, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	doc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}
	return doc, nil
}

// Parse decodes and validates a document from raw JSON.
func Parse(data []byte) (*Document, error) {
	var raw json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	if kindOf(raw) != '{' {
		return nil, structureErrorf(MissingProjectsDetail)
	}

	top, err := decodeObject(raw)
	if err != nil {
		return nil, err
	}

	projectsRaw, ok := top.Get(projectsKey)
	if !ok || kindOf(projectsRaw) != '{' {
		return nil, structureErrorf(MissingProjectsDetail)
	}

	projectFields, err := decodeObject(projectsRaw)
	if err != nil {
		return nil, err
	}

	projects := orderedmap.New[string, *Project](projectFields.Len())
	for pair := projectFields.Oldest(); pair != nil; pair = pair.Next() {
		project, err := parseProject(pair.Key, pair.Value)
		if err != nil {
			return nil, err
		}
		projects.Set(pair.Key, project)
	}

	return &Document{fields: top, projects: projects}, nil
}

func parseProject(id string, raw json.RawMessage) (*Project, error) {
	if kindOf(raw) != '{' {
		return nil, structureErrorf("project %q is not an object", id)
	}

	f, err := decodeObject(raw)
	if err != nil {
		return nil, err
	}

	p := &Project{fields: f}
	historyRaw, ok := f.Get(historyKey)
	if !ok {
		return p, nil
	}

	switch kindOf(historyRaw) {
	case '[':
		if err := json.Unmarshal(historyRaw, &p.history); err != nil {
			return nil, fmt.Errorf("%w: project %q history: %w", ErrParse, id, err)
		}
	case 'n', 0:
		// null history counts as empty
	default:
		return nil, structureErrorf("project %q has a non-array 'history' field", id)
	}
	return p, nil
}

func decodeObject(raw json.RawMessage) (*fields, error) {
	f := orderedmap.New[string, json.RawMessage]()
	if err := json.Unmarshal(raw, f); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	return f, nil
}

// kindOf returns the first significant byte of a JSON value: '{', '[', '"',
// 'n', 't', 'f' or a digit/minus for numbers.
func kindOf(raw json.RawMessage) byte {
	trimmed := bytes.TrimLeft(raw, " \t\r\n")
	if len(trimmed) == 0 {
		return 0
	}
	return trimmed[0]
}

// ClearHistory empties the history of every project and returns the number
// of entries removed. A second call returns 0.
func (d *Document) ClearHistory() int {
	total := 0
	for pair := d.projects.Oldest(); pair != nil; pair = pair.Next() {
		total += pair.Value.clear()
	}
	return total
}

func (p *Project) clear() int {
	n := len(p.history)
	p.history = []json.RawMessage{}
	p.fields.Set(historyKey, emptyHistory)
	return n
}

// HistoryCount returns the total number of history entries without clearing them.
func (d *Document) HistoryCount() int {
	total := 0
	for pair := d.projects.Oldest(); pair != nil; pair = pair.Next() {
		total += len(pair.Value.history)
	}
	return total
}

// Projects returns the history size of each project in document order.
func (d *Document) Projects() []ProjectSummary {
	summaries := make([]ProjectSummary, 0, d.projects.Len())
	for pair := d.projects.Oldest(); pair != nil; pair = pair.Next() {
		summaries = append(summaries, ProjectSummary{
			ID:         pair.Key,
			HistoryLen: len(pair.Value.history),
		})
	}
	return summaries
}

// Encode writes the document as indented JSON followed by a newline.
// An indent below 1 falls back to DefaultIndent. Values that were not cleared
// are written exactly as read, so strings are never re-escaped.
func (d *Document) Encode(w io.Writer, indent int) error {
	if indent < 1 {
		indent = DefaultIndent
	}

	projects := orderedmap.New[string, json.RawMessage](d.projects.Len())
	for pair := d.projects.Oldest(); pair != nil; pair = pair.Next() {
		raw, err := encodeObject(pair.Value.fields)
		if err != nil {
			return fmt.Errorf("encoding project %q: %w", pair.Key, err)
		}
		projects.Set(pair.Key, raw)
	}

	projectsRaw, err := encodeObject(projects)
	if err != nil {
		return fmt.Errorf("encoding projects: %w", err)
	}
	// Set keeps the original position of an existing key.
	d.fields.Set(projectsKey, projectsRaw)

	compact, err := encodeObject(d.fields)
	if err != nil {
		return fmt.Errorf("encoding document: %w", err)
	}

	var buf bytes.Buffer
	if err := json.Indent(&buf, compact, "", strings.Repeat(" ", indent)); err != nil {
		return fmt.Errorf("encoding document: %w", err)
	}
	buf.WriteByte('\n')

	if _, err := w.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("writing document: %w", err)
	}
	return nil
}

// Bytes returns the encoded document.
func (d *Document) Bytes(indent int) ([]byte, error) {
	var buf bytes.Buffer
	if err := d.Encode(&buf, indent); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// encodeObject writes f as a compact JSON object. Keys are encoded without
// HTML escaping and values are copied verbatim.
func encodeObject(f *fields) (json.RawMessage, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for pair := f.Oldest(); pair != nil; pair = pair.Next() {
		if buf.Len() > 1 {
			buf.WriteByte(',')
		}
		key, err := encodeString(pair.Key)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(pair.Value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func encodeString(s string) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
