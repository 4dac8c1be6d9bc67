package typewriter

// InstallCommand is the shell command offered next to the hero animation.
const InstallCommand = "npm install zaplog"

// HeroScript returns the three lines typed out by the hero terminal.
func HeroScript() Script {
	return NewScript(
		Compose(
			Seg(StyleKeyword, "import"),
			Seg(StylePlain, " {"),
			Seg(StyleIdentifier, "createLogger"),
			Seg(StylePlain, "} "),
			Seg(StyleKeyword, "from"),
			Seg(StylePlain, " "),
			Tail(StyleString, `"zaplog"`),
			Term(StylePunct, ";"),
		),
		Compose(
			Seg(StyleKeyword, "const"),
			Seg(StylePlain, " "),
			Seg(StyleIdentifier, "logger"),
			Seg(StylePlain, " "),
			Seg(StyleOperator, "="),
			Seg(StylePlain, " "),
			Seg(StyleMethod, "createLogger"),
			Seg(StylePunct, "();"),
			Seg(StylePlain, " "),
			Tail(StyleComment, "// default environment is  'node'"),
		),
		Compose(
			Seg(StyleIdentifier, "logger"),
			Seg(StyleMethod, ".info"),
			Seg(StylePunct, "("),
			Tail(StyleString, `"Zero config logging for Node.js and browser"`),
			Term(StylePunct, ");"),
		),
	)
}
