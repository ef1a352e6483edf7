package outcome

import "strings"

// Indent is prefixed once per depth level to every rendered line.
const Indent = "    "

// Render describes the record and its cause chain, one record per line.
// Each line reads "namespace.method() - error"; nested causes follow on the
// next line, indented one level deeper than their parent.
func (r *Record[T]) Render(depth int) string {
	var sb strings.Builder
	renderLine(&sb, r, depth)
	if r.inner != nil {
		sb.WriteByte('\n')
		sb.WriteString(r.inner.Render(depth + 1))
	}
	return sb.String()
}

func (r *Record[T]) String() string {
	return r.Render(0)
}

func renderLine(sb *strings.Builder, o Outcome, depth int) {
	if depth > 0 {
		sb.WriteString(strings.Repeat(Indent, depth))
	}

	tag := Tag(o.Namespace(), o.Method())
	sb.WriteString(tag)

	if err := o.Err(); err != nil {
		if tag != "" {
			sb.WriteString(" - ")
		}
		sb.WriteString(err.Error())
	}
}

// Tag formats the namespace/method pair the way rendered chains show it.
func Tag(namespace, method string) string {
	switch {
	case namespace != "" && method != "":
		return namespace + "." + method + "()"
	case namespace != "":
		return namespace
	case method != "":
		return method + "()"
	default:
		return ""
	}
}
