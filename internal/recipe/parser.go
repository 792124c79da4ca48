package recipe

import (
	"regexp"
	"strings"
)

// Placeholders substituted for sections the model omitted or the parser
// could not recognize. Partial data still reaches the user.
const (
	placeholderTitle        = "Не указано"
	placeholderInstructions = "Не указан"
	placeholderIngredients  = "Не указаны"
)

const (
	headerTitle        = "Название рецепта:"
	headerInstructions = "Рецепт:"
	headerIngredients  = "Ингредиенты:"
)

var (
	numberedRe = regexp.MustCompile(`^\d+[.)]\s+`)
	bulletRe   = regexp.MustCompile(`^[-*•]\s+`)
)

// Reply is the structured form of a model answer.
type Reply struct {
	Title        string
	Instructions string
	Ingredients  string
	Raw          string
}

// ParseReply splits a model answer into the three labeled sections.
//
// A recognized section header or a blank line ends the current section;
// continuation lines are accepted only while they carry the section's
// list marker (numbering for instructions, bullets for ingredients).
// Anything unrecognized is dropped rather than guessed at.
func ParseReply(content string) Reply {
	var instructions, ingredients []string
	var title string

	// "" | "instructions" | "ingredients"
	mode := ""

	for _, raw := range strings.Split(content, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			mode = ""
			continue
		}

		switch {
		case strings.HasPrefix(line, headerTitle):
			title = strings.TrimSpace(strings.TrimPrefix(line, headerTitle))
			mode = ""
		case strings.HasPrefix(line, headerInstructions):
			mode = "instructions"
			if tail := strings.TrimSpace(strings.TrimPrefix(line, headerInstructions)); tail != "" {
				instructions = append(instructions, tail)
			}
		case strings.HasPrefix(line, headerIngredients):
			mode = "ingredients"
			if tail := strings.TrimSpace(strings.TrimPrefix(line, headerIngredients)); tail != "" {
				ingredients = append(ingredients, normalizeBullet(tail))
			}
		case mode == "instructions" && numberedRe.MatchString(line):
			instructions = append(instructions, line)
		case mode == "ingredients" && bulletRe.MatchString(line):
			ingredients = append(ingredients, line)
		default:
			// Stray prose ends the section instead of polluting it.
			mode = ""
		}
	}

	reply := Reply{
		Title:        title,
		Instructions: strings.Join(instructions, "\n"),
		Ingredients:  strings.Join(ingredients, "\n"),
		Raw:          content,
	}
	if reply.Title == "" {
		reply.Title = placeholderTitle
	}
	if reply.Instructions == "" {
		reply.Instructions = placeholderInstructions
	}
	if reply.Ingredients == "" {
		reply.Ingredients = placeholderIngredients
	}
	return reply
}

// IngredientsList strips the bullet markers for consumers that want
// individual items.
func (r Reply) IngredientsList() []string {
	var items []string
	for _, line := range strings.Split(r.Ingredients, "\n") {
		line = strings.TrimSpace(line)
		if bulletRe.MatchString(line) {
			items = append(items, strings.TrimSpace(bulletRe.ReplaceAllString(line, "")))
		}
	}
	return items
}

func normalizeBullet(line string) string {
	if bulletRe.MatchString(line) {
		return line
	}
	return "- " + line
}
