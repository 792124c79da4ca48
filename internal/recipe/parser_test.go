package recipe

import (
	"reflect"
	"testing"
)

func TestParseReply(t *testing.T) {
	content := `Название рецепта: Паста карбонара
Рецепт:
1. Отварите пасту до состояния аль денте.
2. Обжарьте гуанчале.
3. Смешайте с яично-сырной массой.
Ингредиенты:
- спагетти 200 г
- гуанчале 100 г
- яйца 2 шт
- пекорино 50 г`

	reply := ParseReply(content)

	if reply.Title != "Паста карбонара" {
		t.Errorf("Title = %q", reply.Title)
	}
	want := "1. Отварите пасту до состояния аль денте.\n2. Обжарьте гуанчале.\n3. Смешайте с яично-сырной массой."
	if reply.Instructions != want {
		t.Errorf("Instructions = %q, want %q", reply.Instructions, want)
	}
	if reply.Ingredients != "- спагетти 200 г\n- гуанчале 100 г\n- яйца 2 шт\n- пекорино 50 г" {
		t.Errorf("Ingredients = %q", reply.Ingredients)
	}
}

func TestParseReplyMissingIngredients(t *testing.T) {
	content := `Название рецепта: Омлет
Рецепт:
1. Взбейте яйца.
2. Жарьте на среднем огне.`

	reply := ParseReply(content)

	if reply.Ingredients != placeholderIngredients {
		t.Errorf("Ingredients = %q, want placeholder %q", reply.Ingredients, placeholderIngredients)
	}
	if reply.Title != "Омлет" {
		t.Errorf("Title = %q", reply.Title)
	}
}

func TestParseReplyEmpty(t *testing.T) {
	reply := ParseReply("")

	if reply.Title != placeholderTitle {
		t.Errorf("Title = %q, want %q", reply.Title, placeholderTitle)
	}
	if reply.Instructions != placeholderInstructions {
		t.Errorf("Instructions = %q, want %q", reply.Instructions, placeholderInstructions)
	}
	if reply.Ingredients != placeholderIngredients {
		t.Errorf("Ingredients = %q, want %q", reply.Ingredients, placeholderIngredients)
	}
}

func TestParseReplyBlankLineEndsSection(t *testing.T) {
	content := `Рецепт:
1. Первый шаг.

2. Этот шаг уже вне секции.`

	reply := ParseReply(content)

	if reply.Instructions != "1. Первый шаг." {
		t.Errorf("Instructions = %q, blank line should close the section", reply.Instructions)
	}
}

func TestParseReplyUnmarkedContinuationDropped(t *testing.T) {
	content := `Рецепт:
1. Нарежьте овощи.
Кстати, это блюдо отлично хранится.
Ингредиенты:
- огурцы
просто текст без маркера
- помидоры`

	reply := ParseReply(content)

	if reply.Instructions != "1. Нарежьте овощи." {
		t.Errorf("Instructions = %q", reply.Instructions)
	}
	// The stray line ends the section; the following bullet is outside it.
	if reply.Ingredients != "- огурцы" {
		t.Errorf("Ingredients = %q", reply.Ingredients)
	}
}

func TestParseReplyInlineTails(t *testing.T) {
	content := `Название рецепта: Салат
Рецепт: 1. Смешайте всё.
Ингредиенты: огурцы`

	reply := ParseReply(content)

	if reply.Instructions != "1. Смешайте всё." {
		t.Errorf("Instructions = %q", reply.Instructions)
	}
	// Inline tail without a marker is normalized into a bullet.
	if reply.Ingredients != "- огурцы" {
		t.Errorf("Ingredients = %q", reply.Ingredients)
	}
}

func TestIngredientsList(t *testing.T) {
	reply := ParseReply(`Ингредиенты:
- спагетти 200 г
* яйца 2 шт`)

	got := reply.IngredientsList()
	want := []string{"спагетти 200 г", "яйца 2 шт"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("IngredientsList() = %v, want %v", got, want)
	}
}
