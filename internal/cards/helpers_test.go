package cards

func monster(id int, name string, atk, def int) Card {
	return Card{
		ID:        id,
		Name:      name,
		ShortName: name,
		Type:      "効果モン",
		Attribute: "光",
		Race:      "ドラゴン族",
		Level:     intPtr(4),
		Attack:    atk,
		Defense:   def,
		Gender:    "-",
	}
}

func fixtureRepo() *Repository {
	blue := monster(3, "Blue-Eyes White Dragon", 3000, 2500)
	blue.Level = intPtr(8)
	blue.Release = 20020101
	blue.Categories = []string{"ドラゴン", "ドラゴン", "Blue-Eyes"}

	elf := monster(1, "Gemini Elf", 1900, 900)
	elf.Attribute = "地"
	elf.Race = "魔法使い族"
	elf.Release = 20030101
	elf.Description = "A pair of elves. Often called 「Twin Elf」 by 「Dragon」 tamers."

	jinn := monster(2, "La Jinn", 1800, 1000)
	jinn.Attribute = "闇"
	jinn.Race = "悪魔族"
	jinn.Release = 20020101

	fusion := monster(10, "Dragon Master Knight", 5000, 5000)
	fusion.Type = "融合"
	fusion.Level = intPtr(12)
	fusion.Release = 20050101

	trap := Card{ID: 20, Name: "Mirror Force", ShortName: "Mirror", Type: "通常罠", Attack: 0, Defense: 0}

	unknown := monster(5, "Dark Sage", StatUnknown, StatUnknown)
	unknown.Attribute = "闇"
	unknown.Level = nil

	token := monster(100001, "Sheep Token", 0, 0)

	return NewRepository([]Card{blue, elf, jinn, fusion, trap, unknown, token}, "7")
}

func ids(list []*Card) []int {
	out := make([]int, len(list))
	for i, c := range list {
		out[i] = c.ID
	}
	return out
}
