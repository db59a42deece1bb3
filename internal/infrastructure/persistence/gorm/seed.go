package gorm

import (
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// tagVocabulary is the catalog's base tag set.
var tagVocabulary = []string{
	"#сніданок", "#обід", "#вечеря", "#десерт", "#швидко", "#здорове",
	"#м'ясо", "#риба", "#салат", "#суп", "#випічка", "#паста",
	"#українська", "#італійська", "#азійська", "#вегетаріанське",
	"#курка", "#яловичина", "#сир", "#овочі", "#фрукти", "#шоколад",
	"#кава", "#чай", "#смузі", "#лимонад", "#коктейль", "#молочний",
	"#гарячий", "#холодний", "#освіжаючий", "#ягідний", "#вітамінний",
	"#традиційне", "#свіжий", "#домашній",
}

type seedRecipe struct {
	recipe      RecipeModel
	ingredients []string
	steps       []string
	tags        []string
}

// Seed populates the catalog when it is empty. Running it against a
// populated database is a no-op.
func Seed(db *gorm.DB, log *zap.Logger) error {
	var count int64
	if err := db.Model(&RecipeModel{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Debug("catalog already populated, skipping seed", zap.Int64("recipes", count))
		return nil
	}

	return db.Transaction(func(tx *gorm.DB) error {
		tagByName := make(map[string]TagModel, len(tagVocabulary))
		for _, name := range tagVocabulary {
			var tag TagModel
			if err := tx.Where("name = ?", name).
				Attrs(TagModel{Name: name}).
				FirstOrCreate(&tag).Error; err != nil {
				return err
			}
			tagByName[name] = tag
		}

		for _, s := range sampleRecipes() {
			model := s.recipe
			for _, name := range s.ingredients {
				model.Ingredients = append(model.Ingredients, IngredientModel{Name: name})
			}
			for i, instruction := range s.steps {
				model.Steps = append(model.Steps, StepModel{
					StepNumber:  i + 1,
					Instruction: instruction,
				})
			}
			if err := tx.Omit("Tags").Create(&model).Error; err != nil {
				return err
			}
			links := make([]TagModel, 0, len(s.tags))
			for _, name := range s.tags {
				if tag, ok := tagByName[name]; ok {
					links = append(links, tag)
				}
			}
			if len(links) > 0 {
				if err := tx.Model(&model).Association("Tags").Append(&links); err != nil {
					return err
				}
			}
		}

		log.Info("catalog seeded",
			zap.Int("recipes", len(sampleRecipes())),
			zap.Int("tags", len(tagVocabulary)),
		)
		return nil
	})
}

func sampleRecipes() []seedRecipe {
	return []seedRecipe{
		{
			recipe: RecipeModel{
				Title:            "Борщ український",
				ShortDescription: "Традиційний борщ з яловичиною та сметаною",
				Description:      "Класичний український борщ на міцному яловичому бульйоні з буряком, капустою та картоплею. Подається зі сметаною та часником.",
				ImagePath:        "images/borshch.jpg",
				PreparationTime:  120,
				Servings:         6,
				Type:             "food",
				CreatedBy:        "chef_maria",
			},
			ingredients: []string{
				"Яловичина 500г", "Буряк 2шт", "Капуста 300г", "Картопля 3шт",
				"Морква 1шт", "Цибуля 1шт", "Томатна паста 2ст.л.", "Сметана 200г",
			},
			steps: []string{
				"Зваріть міцний бульйон з яловичини протягом 1.5 години",
				"Наріжте овочі: буряк соломкою, капусту, картоплю кубиками",
				"Обсмажте цибулю, моркву та буряк з томатною пастою",
				"Додайте овочі до бульйону та варіть 20 хвилин",
				"Подавайте зі сметаною та свіжим часником",
			},
			tags: []string{"#обід", "#суп", "#українська", "#традиційне"},
		},
		{
			recipe: RecipeModel{
				Title:            "Курячий суп з локшиною",
				ShortDescription: "Легкий суп на курячому бульйоні",
				Description:      "Зігріваючий курячий суп з домашньою локшиною та овочами. Простий у приготуванні та улюблений дітьми.",
				ImagePath:        "images/chicken-soup.jpg",
				PreparationTime:  50,
				Servings:         4,
				Type:             "food",
				CreatedBy:        "admin",
			},
			ingredients: []string{
				"Куряче філе 400г", "Локшина 150г", "Морква 1шт", "Цибуля 1шт", "Зелень за смаком",
			},
			steps: []string{
				"Зваріть курячий бульйон з філе",
				"Додайте нарізані моркву та цибулю",
				"Всипте локшину та варіть до готовності",
				"Подавайте зі свіжою зеленню",
			},
			tags: []string{"#обід", "#суп", "#курка", "#швидко"},
		},
		{
			recipe: RecipeModel{
				Title:            "Сирники з ягодами",
				ShortDescription: "Ніжні домашні сирники з полуницею та малиною",
				Description:      "Традиційні українські сирники, приготовані з натурального творогу та свіжих ягід. Ідеальний сніданок для всієї родини.",
				ImagePath:        "images/syrnyky.jpg",
				PreparationTime:  25,
				Servings:         3,
				Type:             "food",
				CreatedBy:        "chef_maria",
			},
			ingredients: []string{
				"Творог 400г", "Яйце 1шт", "Борошно 3ст.л.", "Цукор 2ст.л.", "Полуниця та малина 150г",
			},
			steps: []string{
				"Змішайте творог, яйце, цукор та борошно",
				"Сформуйте сирники та обваляйте у борошні",
				"Обсмажте з обох боків до золотистої скоринки",
				"Подавайте з ягодами",
			},
			tags: []string{"#сніданок", "#десерт", "#сир", "#українська"},
		},
		{
			recipe: RecipeModel{
				Title:            "Паста Карбонара",
				ShortDescription: "Класична італійська паста з беконом",
				Description:      "Вершкова паста з хрустким беконом, пармезаном та жовтками. Готується за двадцять хвилин.",
				ImagePath:        "images/carbonara.jpg",
				PreparationTime:  20,
				Servings:         2,
				Type:             "food",
				CreatedBy:        "john_cook",
			},
			ingredients: []string{
				"Спагеті 200г", "Бекон 150г", "Яйце 2шт", "Пармезан 50г", "Часник 2 зубки", "Чорний перець 1ч.л.",
			},
			steps: []string{
				"Відваріть спагеті до стану аль денте",
				"Обсмажте бекон з часником",
				"Змішайте яйця з тертим пармезаном",
				"З'єднайте пасту з беконом та яєчною сумішшю поза вогнем",
			},
			tags: []string{"#обід", "#паста", "#італійська"},
		},
		{
			recipe: RecipeModel{
				Title:            "Грецький салат",
				ShortDescription: "Свіжий салат з фетою та оливками",
				Description:      "Легкий овочевий салат з сиром фета, оливками та оливковою олією. Жодної термічної обробки.",
				ImagePath:        "images/greek-salad.jpg",
				PreparationTime:  15,
				Servings:         2,
				Type:             "food",
				CreatedBy:        "admin",
			},
			ingredients: []string{
				"Помідори 2шт", "Огірок 1шт", "Фета 100г", "Оливки 50г", "Оливкова олія 2ст.л.",
			},
			steps: []string{
				"Наріжте овочі великими шматками",
				"Додайте фету та оливки",
				"Заправте оливковою олією",
			},
			tags: []string{"#салат", "#здорове", "#вегетаріанське", "#швидко", "#овочі"},
		},
		{
			recipe: RecipeModel{
				Title:            "Мохіто безалкогольний",
				ShortDescription: "Освіжаючий напій з лаймом та м'ятою",
				Description:      "Холодний освіжаючий напій з лаймом, м'ятою та содовою. Ідеальний для спекотного літнього дня.",
				ImagePath:        "images/mojito.jpg",
				PreparationTime:  10,
				Servings:         1,
				Type:             "drink",
				CreatedBy:        "admin",
			},
			ingredients: []string{
				"Лайм 1шт", "М'ята 10 листків", "Цукровий сироп 2ст.л.", "Содова 200мл", "Лід за смаком",
			},
			steps: []string{
				"Розімніть м'яту з лаймом та сиропом",
				"Додайте лід та залийте содовою",
				"Перемішайте та прикрасьте гілочкою м'яти",
			},
			tags: []string{"#холодний", "#освіжаючий", "#коктейль", "#лимонад"},
		},
		{
			recipe: RecipeModel{
				Title:            "Ягідний смузі",
				ShortDescription: "Густий смузі з полуниці, чорниці та банана",
				Description:      "Вітамінний смузі зі свіжих ягід та банана на йогуртовій основі. Корисний сніданок за п'ять хвилин.",
				ImagePath:        "images/berry-smoothie.jpg",
				PreparationTime:  5,
				Servings:         2,
				Type:             "drink",
				CreatedBy:        "chef_maria",
			},
			ingredients: []string{
				"Полуниця 150г", "Чорниця 100г", "Банан 1шт", "Йогурт 200мл", "Мед 1ст.л.",
			},
			steps: []string{
				"Покладіть усі інгредієнти в блендер",
				"Збийте до однорідної консистенції",
				"Розлийте по склянках та подавайте одразу",
			},
			tags: []string{"#смузі", "#ягідний", "#вітамінний", "#швидко", "#здорове"},
		},
		{
			recipe: RecipeModel{
				Title:            "Імбирний чай з лимоном",
				ShortDescription: "Зігріваючий чай зі свіжим імбиром та медом",
				Description:      "Гарячий напій зі свіжого імбиру, лимона та меду. Чудово зігріває та підтримує імунітет взимку.",
				ImagePath:        "images/ginger-tea.jpg",
				PreparationTime:  15,
				Servings:         2,
				Type:             "drink",
				CreatedBy:        "john_cook",
			},
			ingredients: []string{
				"Імбир 30г", "Лимон 0.5шт", "Мед 2ст.л.", "Вода 500мл",
			},
			steps: []string{
				"Наріжте імбир тонкими скибочками та залийте окропом",
				"Настоюйте 10 хвилин",
				"Додайте лимон та мед перед подачею",
			},
			tags: []string{"#чай", "#гарячий", "#вітамінний"},
		},
	}
}
