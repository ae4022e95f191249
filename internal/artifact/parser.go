package artifact

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	artifactOpen  = "<boltArtifact"
	artifactClose = "</boltArtifact>"
	actionOpen    = "<boltAction"
	actionClose   = "</boltAction>"

	titleAttr    = `title="`
	typeAttr     = `type="`
	filePathAttr = `filePath="`

	// DefaultTitle is used for the folder step when the document declares no title.
	DefaultTitle = "Project Files"

	actionTypeFile  = "file"
	actionTypeShell = "shell"
)

// action is one raw boltAction match inside the artifact body.
type action struct {
	Type     string
	FilePath string
	Body     string
}

// Parse extracts the ordered steps from document.
//
// A document without a complete boltArtifact container yields no steps at
// all. Otherwise the first step is always a synthetic CreateFolder step,
// followed by one step per recognized action in document order. Actions with
// an unrecognized type are skipped.
func Parse(document string) []Step {
	body, ok := artifactBody(document)
	if !ok {
		return nil
	}

	id := 1
	steps := []Step{{
		ID:     id,
		Title:  declaredTitle(document),
		Type:   CreateFolder,
		Status: StatusPending,
	}}

	for _, a := range scanActions(body) {
		switch a.Type {
		case actionTypeFile:
			id++
			name := a.FilePath
			if name == "" {
				name = "file"
			}
			steps = append(steps, Step{
				ID:     id,
				Title:  "Create " + name,
				Type:   CreateFile,
				Status: StatusPending,
				Code:   strings.TrimSpace(a.Body),
				Path:   a.FilePath,
			})
		case actionTypeShell:
			id++
			steps = append(steps, Step{
				ID:     id,
				Title:  "Run command",
				Type:   RunScript,
				Status: StatusPending,
				Code:   strings.TrimSpace(a.Body),
			})
		}
	}

	return steps
}

// artifactBody returns the text between the first boltArtifact opening tag
// and the nearest closing tag after it.
func artifactBody(document string) (string, bool) {
	start := strings.Index(document, artifactOpen)
	if start < 0 {
		return "", false
	}
	rest := document[start+len(artifactOpen):]

	// The opening tag ends at the first '>', whatever its attributes hold.
	gt := strings.IndexByte(rest, '>')
	if gt < 0 {
		return "", false
	}
	rest = rest[gt+1:]

	end := strings.Index(rest, artifactClose)
	if end < 0 {
		return "", false
	}
	return rest[:end], true
}

// declaredTitle returns the value of the first title="..." attribute found
// anywhere in document. The search is not limited to the container tag.
func declaredTitle(document string) string {
	i := strings.Index(document, titleAttr)
	if i < 0 {
		return DefaultTitle
	}
	value := document[i+len(titleAttr):]
	q := strings.IndexByte(value, '"')
	if q < 0 {
		return DefaultTitle
	}
	return value[:q]
}

// scanActions returns every non-overlapping boltAction in body, leftmost
// first. An opening tag whose header does not match is ignored and scanning
// resumes just past its '<'. Scanning stops at the first well-formed header
// with no closing tag after it, since no later action could close either.
func scanActions(body string) []action {
	var actions []action
	pos := 0
	for pos < len(body) {
		i := strings.Index(body[pos:], actionOpen)
		if i < 0 {
			break
		}
		start := pos + i
		headerStart := start + len(actionOpen)

		typ, filePath, n, ok := matchActionHeader(body[headerStart:])
		if !ok {
			pos = start + 1
			continue
		}
		contentStart := headerStart + n

		end := strings.Index(body[contentStart:], actionClose)
		if end < 0 {
			break
		}

		actions = append(actions, action{
			Type:     typ,
			FilePath: filePath,
			Body:     body[contentStart : contentStart+end],
		})
		pos = contentStart + end + len(actionClose)
	}
	return actions
}

// matchActionHeader matches the remainder of an action opening tag,
// `\s+type="T"(\s+filePath="P")?>`, at the start of s. It returns the
// attribute values and the number of bytes consumed including the '>'.
func matchActionHeader(s string) (typ, filePath string, n int, ok bool) {
	i := skipSpace(s, 0)
	if i == 0 || !strings.HasPrefix(s[i:], typeAttr) {
		return "", "", 0, false
	}
	i += len(typeAttr)
	q := strings.IndexByte(s[i:], '"')
	if q < 0 {
		return "", "", 0, false
	}
	typ = s[i : i+q]
	i += q + 1

	if j := skipSpace(s, i); j > i && strings.HasPrefix(s[j:], filePathAttr) {
		j += len(filePathAttr)
		if q := strings.IndexByte(s[j:], '"'); q >= 0 {
			end := j + q + 1
			if end < len(s) && s[end] == '>' {
				return typ, s[j : j+q], end + 1, true
			}
		}
	}

	if i < len(s) && s[i] == '>' {
		return typ, "", i + 1, true
	}
	return "", "", 0, false
}

// skipSpace returns the index of the first non-space rune in s at or after i.
func skipSpace(s string, i int) int {
	for i < len(s) {
		r, size := utf8.DecodeRuneInString(s[i:])
		if !unicode.IsSpace(r) && r != '\uFEFF' {
			break
		}
		i += size
	}
	return i
}
