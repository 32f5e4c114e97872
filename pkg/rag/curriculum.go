package rag

import "github.com/sahayak-ai/sahayak/pkg/types"

// curriculumCatalog is the curated grade 1-10 curriculum. It is static
// configuration compiled into the binary, not a live-write store, the
// embedding index is rebuilt from it on every startup.
var curriculumCatalog = []types.KnowledgeEntry{
	{
		Grade:         1,
		Subject:       "Math",
		ChapterNumber: 1,
		ChapterName:   "Basic Counting",
		Content:       "First grade math focuses on counting numbers 1-100, basic addition and subtraction within 20, and understanding place value. Students learn to recognize and write numbers, compare quantities, and solve simple word problems.",
	},
	{
		Grade:         1,
		Subject:       "Science",
		ChapterNumber: 1,
		ChapterName:   "Living vs Non-living",
		Content:       "First grade science introduces the difference between living and non-living things. Students learn about basic needs of living things like food, water, air, and shelter. They explore plants, animals, and their habitats.",
	},
	{
		Grade:         1,
		Subject:       "English",
		ChapterNumber: 1,
		ChapterName:   "Phonics and Reading",
		Content:       "First grade English focuses on phonics, sight words, and basic reading skills. Students learn letter sounds, blend consonants and vowels, and read simple sentences. Writing includes forming letters and writing simple words.",
	},
	{
		Grade:         2,
		Subject:       "Math",
		ChapterNumber: 1,
		ChapterName:   "Addition and Subtraction",
		Content:       "Second grade math extends addition and subtraction skills to 100, introduces regrouping, and covers basic geometry shapes. Students work with money, time, and measurement using standard units.",
	},
	{
		Grade:         2,
		Subject:       "Science",
		ChapterNumber: 1,
		ChapterName:   "Weather and Seasons",
		Content:       "Second grade science covers weather patterns, seasons, and their effects on living things. Students learn about different types of weather, how to measure weather conditions, and seasonal changes in plants and animals.",
	},
	{
		Grade:         3,
		Subject:       "Math",
		ChapterNumber: 1,
		ChapterName:   "Multiplication and Division",
		Content:       "Third grade math introduces multiplication and division concepts, fractions as parts of a whole, and area and perimeter. Students work with larger numbers and solve multi-step word problems.",
	},
	{
		Grade:         3,
		Subject:       "Science",
		ChapterNumber: 1,
		ChapterName:   "Plant and Animal Life Cycles",
		Content:       "Third grade science explores life cycles of plants and animals, adaptation and survival, and basic concepts of inheritance. Students learn how organisms grow, reproduce, and adapt to their environments.",
	},
	{
		Grade:         4,
		Subject:       "Math",
		ChapterNumber: 1,
		ChapterName:   "Multi-digit Operations",
		Content:       "Fourth grade math focuses on multi-digit multiplication and division, equivalent fractions, and decimal notation. Students work with factors, multiples, and patterns in number sequences.",
	},
	{
		Grade:         4,
		Subject:       "Science",
		ChapterNumber: 1,
		ChapterName:   "Energy and Motion",
		Content:       "Fourth grade science covers energy forms (light, heat, sound, electrical, mechanical), motion and forces, and simple machines. Students explore how energy transfers and transforms in different situations.",
	},
	{
		Grade:         5,
		Subject:       "Math",
		ChapterNumber: 1,
		ChapterName:   "Fractions and Decimals",
		Content:       "Fifth grade math focuses on operations with fractions and decimals, volume and coordinate planes. Students learn to add, subtract, multiply, and divide fractions and decimals with understanding.",
	},
	{
		Grade:         5,
		Subject:       "Science",
		ChapterNumber: 2,
		ChapterName:   "Ecosystems and Environment",
		Content:       "Fifth grade science covers ecosystems, food chains and webs, water cycle, and human impact on environment. Students learn about interdependence of organisms and conservation practices.",
	},
	{
		Grade:         5,
		Subject:       "Social",
		ChapterNumber: 3,
		ChapterName:   "American History Foundations",
		Content:       "Fifth grade social studies covers early American history, including Native American cultures, European exploration, colonial life, and the founding of the United States.",
	},
	{
		Grade:         5,
		Subject:       "English",
		ChapterNumber: 4,
		ChapterName:   "Reading Comprehension and Writing",
		Content:       "Fifth grade English emphasizes reading comprehension strategies, vocabulary development, and structured writing. Students analyze texts, write narratives, and learn basic research skills.",
	},
	{
		Grade:         6,
		Subject:       "Math",
		ChapterNumber: 1,
		ChapterName:   "Ratios and Proportions",
		Content:       "Sixth grade math introduces ratios, rates, and proportional relationships. Students work with integers, rational numbers, and begin algebraic thinking with expressions and equations.",
	},
	{
		Grade:         6,
		Subject:       "Science",
		ChapterNumber: 1,
		ChapterName:   "Earth's Systems",
		Content:       "Sixth grade science explores Earth's systems including weather and climate, plate tectonics, and the rock cycle. Students learn about interactions between atmosphere, hydrosphere, geosphere, and biosphere.",
	},
	{
		Grade:         7,
		Subject:       "Math",
		ChapterNumber: 1,
		ChapterName:   "Algebraic Expressions",
		Content:       "Seventh grade math focuses on algebraic expressions and equations, proportional relationships, and probability. Students work with integers, rational numbers, and geometric constructions.",
	},
	{
		Grade:         7,
		Subject:       "Science",
		ChapterNumber: 1,
		ChapterName:   "Life Science Fundamentals",
		Content:       "Seventh grade science covers cell structure and function, genetics and heredity, evolution and natural selection. Students explore how organisms are organized and how traits are passed down.",
	},
	{
		Grade:         8,
		Subject:       "Math",
		ChapterNumber: 1,
		ChapterName:   "Linear Functions",
		Content:       "Eighth grade math introduces linear functions, systems of equations, and geometric transformations. Students work with the Pythagorean theorem, volume formulas, and scatter plots.",
	},
	{
		Grade:         8,
		Subject:       "Science",
		ChapterNumber: 2,
		ChapterName:   "Physical Science Basics",
		Content:       "Eighth grade science covers forces and motion, energy transfer, wave properties, and basic chemistry including atoms, elements, and chemical reactions.",
	},
	{
		Grade:         8,
		Subject:       "Social",
		ChapterNumber: 3,
		ChapterName:   "American History through Civil War",
		Content:       "Eighth grade social studies typically covers American history from colonial times through the Civil War, including the Constitution, westward expansion, and sectional conflicts.",
	},
	{
		Grade:         8,
		Subject:       "English",
		ChapterNumber: 4,
		ChapterName:   "Literary Analysis and Composition",
		Content:       "Eighth grade English focuses on literary analysis, argumentative writing, and research skills. Students read complex texts, analyze themes and literary devices, and write structured essays.",
	},
	{
		Grade:         9,
		Subject:       "Math",
		ChapterNumber: 1,
		ChapterName:   "Algebra I Foundations",
		Content:       "Ninth grade math typically covers Algebra I, including linear equations, quadratic functions, exponential functions, and statistical analysis. Students develop algebraic reasoning and problem-solving skills.",
	},
	{
		Grade:         9,
		Subject:       "Science",
		ChapterNumber: 1,
		ChapterName:   "Biology Fundamentals",
		Content:       "Ninth grade science often focuses on biology, covering cell biology, genetics, evolution, ecology, and human body systems. Students learn scientific method and conduct laboratory investigations.",
	},
	{
		Grade:         10,
		Subject:       "Math",
		ChapterNumber: 1,
		ChapterName:   "Geometry and Advanced Algebra",
		Content:       "Tenth grade math often includes Geometry (proofs, theorems, spatial reasoning) or Algebra II (polynomials, rational functions, logarithms, trigonometry basics).",
	},
	{
		Grade:         10,
		Subject:       "Science",
		ChapterNumber: 2,
		ChapterName:   "Chemistry Foundations",
		Content:       "Tenth grade science typically covers chemistry fundamentals including atomic structure, chemical bonding, stoichiometry, and chemical reactions. Laboratory work emphasizes quantitative analysis.",
	},
	{
		Grade:         10,
		Subject:       "Social",
		ChapterNumber: 3,
		ChapterName:   "World History and Geography",
		Content:       "Tenth grade social studies often covers world history from ancient civilizations to modern times, with emphasis on cultural development, political systems, and global connections.",
	},
	{
		Grade:         10,
		Subject:       "English",
		ChapterNumber: 4,
		ChapterName:   "Advanced Composition and Literature",
		Content:       "Tenth grade English emphasizes critical analysis of literature, advanced composition techniques, research methodology, and persuasive writing. Students engage with complex themes and diverse perspectives.",
	},
}

// Curriculum exposes a copy of the curated catalog for listing APIs.
func Curriculum() []types.KnowledgeEntry {
	out := make([]types.KnowledgeEntry, len(curriculumCatalog))
	copy(out, curriculumCatalog)
	return out
}
