package domain

// BodyParts is the fixed scan order, feet to face.
var BodyParts = []string{
	"Dedos de los pies", "Pies", "Pantorrillas", "Muslos", "Glúteos", "Abdomen",
	"Pecho", "Espalda", "Brazos", "Manos", "Cuello", "Cara",
}

var Sensations = []string{"Tensión", "Relajación", "Hormigueo", "Calor", "Frío", "Entumecimiento"}

type ReframeScenario struct {
	Situation       string
	NegativeThought string
	Distortions     []string
	Hints           []string
}

var ReframeScenarios = []ReframeScenario{
	{
		Situation:       "Tu amigo no respondió tu mensaje desde hace dos días",
		NegativeThought: "Está enojado conmigo, probablemente ya no quiere ser mi amigo",
		Distortions:     []string{"Lectura de mente", "Catastrofización"},
		Hints: []string{
			"Considera otras explicaciones posibles",
			"Pregúntate: ¿Qué evidencia tengo?",
			"Piensa en explicaciones alternativas más realistas",
		},
	},
	{
		Situation:       "Cometiste un error en una presentación de trabajo",
		NegativeThought: "Soy un fracaso total, nunca hago nada bien",
		Distortions:     []string{"Pensamiento todo-o-nada", "Sobregeneralización"},
		Hints: []string{
			"Un error no define tu valor completo",
			"¿Es realmente cierto que \"nunca\" haces nada bien?",
			"Piensa en tus logros anteriores",
		},
	},
	{
		Situation:       "No fuiste invitado a una reunión social",
		NegativeThought: "Nadie me quiere, siempre soy excluido",
		Distortions:     []string{"Sobregeneralización", "Personalización"},
		Hints: []string{
			"Puede haber muchas razones no relacionadas contigo",
			"Recuerda otras veces que sí fuiste incluido",
			"Evita asumir que todo es personal",
		},
	},
}

type EmotionScenario struct {
	Emotion   string
	Roots     []string
	Responses []string
}

var EmotionScenarios = []EmotionScenario{
	{
		Emotion: "Ansiedad",
		Roots:   []string{"Incertidumbre", "Falta de control", "Amenaza percibida"},
		Responses: []string{
			"Enfocarse en lo que SÍ puedo controlar",
			"Buscar información para reducir incertidumbre",
			"Practicar técnicas de calma",
		},
	},
	{
		Emotion: "Tristeza",
		Roots:   []string{"Pérdida", "Decepción", "Soledad"},
		Responses: []string{
			"Permitirte sentir sin juzgarte",
			"Buscar apoyo emocional",
			"Recordar que es temporal",
		},
	},
	{
		Emotion: "Ira",
		Roots:   []string{"Límites violados", "Injusticia", "Frustración"},
		Responses: []string{
			"Expresar de forma asertiva, no agresiva",
			"Establecer límites claros",
			"Canalizar en acción constructiva",
		},
	},
	{
		Emotion: "Culpa",
		Roots:   []string{"Creencia de haber actuado mal", "Arrepentimiento", "Responsabilidad"},
		Responses: []string{
			"Evaluar si tu acción fue realmente inapropiada",
			"Disculparte genuinamente si es necesario",
			"Perdonarte a ti mismo y aprender",
		},
	},
	{
		Emotion: "Miedo",
		Roots:   []string{"Peligro potencial", "Lo desconocido", "Vulnerabilidad"},
		Responses: []string{
			"Evaluar si el miedo es proporcional a la amenaza real",
			"Buscar información y preparación",
			"Confiar en tu capacidad de enfrentar",
		},
	},
}

var MindfulnessQuotes = []string{
	"Respira. Estás exactamente donde necesitas estar.",
	"Tu mente está quieta. Tu corazón está en paz.",
	"Este momento es suficiente.",
	"Soy la testigo de mis pensamientos, no mis pensamientos.",
	"La paz viene del interior.",
}
