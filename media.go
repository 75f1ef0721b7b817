package cssom

import (
	"strconv"
	"strings"

	"github.com/npillmayer/cssom/style"
	parse "github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// MediaConditions is a ready-to-use implementation of interface
// Conditions, evaluating media queries against a static media type and
// viewport. It understands media types (with "not"/"only" prefixes) and
// the width/height feature family in px units; any other feature makes
// its query evaluate to false. Malformed query text evaluates to false
// as well; conditions are never a source of errors.
//
// The zero value describes an unknown medium: only type-less queries and
// "all" will hold.
type MediaConditions struct {
	Type   string  // media type, e.g. "screen" or "print"
	Width  float64 // viewport width in px; 0 means unknown
	Height float64 // viewport height in px; 0 means unknown
}

var _ Conditions = MediaConditions{}

// Media evaluates a media query list; it holds if any of the
// comma-separated queries holds. Empty query text always holds.
func (mc MediaConditions) Media(query string) bool {
	if strings.TrimSpace(query) == "" {
		return true
	}
	for _, q := range scanMediaQueries(query) {
		if mc.queryHolds(q) {
			return true
		}
	}
	return false
}

// Supports evaluates a feature query of the form "(property: value)".
// It holds if the property key belongs to a known property group.
// Negations and conjunctions are not interpreted and evaluate to false.
func (mc MediaConditions) Supports(condition string) bool {
	c := strings.TrimSpace(condition)
	if !strings.HasPrefix(c, "(") || !strings.HasSuffix(c, ")") {
		return false
	}
	inner := strings.TrimSuffix(strings.TrimPrefix(c, "("), ")")
	if strings.ContainsAny(inner, "()") { // nested or compound condition
		return false
	}
	key, value, ok := strings.Cut(inner, ":")
	if !ok || strings.TrimSpace(value) == "" {
		return false
	}
	return style.IsKnownPropertyKey(strings.ToLower(strings.TrimSpace(key)))
}

// --- Media query scanning --------------------------------------------------

type mediaQuery struct {
	negated   bool
	mediaType string
	features  []mediaFeature
	malformed bool
}

type mediaFeature struct {
	name  string
	value string
}

// scanMediaQueries lexes a media query list into its queries. Scanning is
// token-based and permissive: anything it cannot make sense of marks the
// enclosing query as malformed.
func scanMediaQueries(query string) []mediaQuery {
	lexer := css.NewLexer(parse.NewInputString(query))
	var queries []mediaQuery
	var current mediaQuery
	first := true
	for {
		tt, data := lexer.Next()
		if tt == css.ErrorToken { // EOF or lexing failure
			break
		}
		switch tt {
		case css.WhitespaceToken, css.CommentToken:
			continue
		case css.CommaToken:
			if first { // empty query segment
				current.malformed = true
			}
			queries = append(queries, current)
			current = mediaQuery{}
			first = true
			continue
		case css.IdentToken:
			ident := strings.ToLower(string(data))
			switch {
			case ident == "not" && first:
				current.negated = true
			case ident == "only" && first:
				// no-op prefix
			case ident == "and":
				// feature conjunction
			case current.mediaType == "":
				current.mediaType = ident
			default:
				current.malformed = true
			}
		case css.LeftParenthesisToken:
			feature, ok := scanMediaFeature(lexer)
			if !ok {
				current.malformed = true
			} else {
				current.features = append(current.features, feature)
			}
		default:
			current.malformed = true
		}
		first = false
	}
	if first { // empty trailing query segment
		current.malformed = true
	}
	return append(queries, current)
}

// scanMediaFeature reads "name : value )" from the lexer, the opening
// parenthesis already being consumed.
func scanMediaFeature(lexer *css.Lexer) (mediaFeature, bool) {
	var feature mediaFeature
	var value strings.Builder
	seenColon := false
	for {
		tt, data := lexer.Next()
		switch tt {
		case css.ErrorToken: // unclosed parenthesis
			return feature, false
		case css.WhitespaceToken, css.CommentToken:
			continue
		case css.RightParenthesisToken:
			feature.value = value.String()
			return feature, feature.name != ""
		case css.ColonToken:
			seenColon = true
		case css.IdentToken:
			if !seenColon && feature.name == "" {
				feature.name = strings.ToLower(string(data))
				continue
			}
			fallthrough
		default:
			if !seenColon {
				return feature, false
			}
			value.Write(data)
		}
	}
}

func (mc MediaConditions) queryHolds(q mediaQuery) bool {
	if q.malformed {
		return false
	}
	holds := mc.typeMatches(q.mediaType)
	for _, feature := range q.features {
		holds = holds && mc.featureHolds(feature)
	}
	if q.negated {
		return !holds
	}
	return holds
}

func (mc MediaConditions) typeMatches(mediaType string) bool {
	if mediaType == "" || mediaType == "all" {
		return true
	}
	return strings.EqualFold(mediaType, mc.Type)
}

func (mc MediaConditions) featureHolds(feature mediaFeature) bool {
	px, ok := pixelValue(feature.value)
	if !ok {
		return false
	}
	switch feature.name {
	case "width":
		return mc.Width > 0 && mc.Width == px
	case "min-width":
		return mc.Width > 0 && mc.Width >= px
	case "max-width":
		return mc.Width > 0 && mc.Width <= px
	case "height":
		return mc.Height > 0 && mc.Height == px
	case "min-height":
		return mc.Height > 0 && mc.Height >= px
	case "max-height":
		return mc.Height > 0 && mc.Height <= px
	}
	tracer().Debugf("media: unsupported feature (%s: %s)", feature.name, feature.value)
	return false
}

func pixelValue(value string) (float64, bool) {
	v := strings.ToLower(strings.TrimSpace(value))
	if !strings.HasSuffix(v, "px") {
		return 0, false
	}
	px, err := strconv.ParseFloat(strings.TrimSuffix(v, "px"), 64)
	if err != nil {
		return 0, false
	}
	return px, true
}
