package models

// StackLabels maps the known technology keys stored in a project's stack
// to their display labels. The frontend picks icons off the same keys;
// unknown keys are kept as-is and rendered without an icon.
var StackLabels = map[string]string{
	"nextjs":       "Next.js",
	"react":        "React",
	"tailwind":     "Tailwind",
	"typescript":   "TypeScript",
	"supabase":     "Supabase",
	"postgres":     "PostgreSQL",
	"nodejs":       "Node.js",
	"express":      "Express",
	"prisma":       "Prisma",
	"docker":       "Docker",
	"vercel":       "Vercel",
	"figma":        "Figma",
	"flutter":      "Flutter",
	"react-native": "React Native",
	"firebase":     "Firebase",
	"github":       "GitHub",
}

// StackLabel returns the display label for a stack key, falling back to
// the key itself for anything outside the known vocabulary.
func StackLabel(key string) string {
	if label, ok := StackLabels[key]; ok {
		return label
	}
	return key
}
