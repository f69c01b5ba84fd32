package outline

// Arguments assembles the complete invocation of the external tool:
//
//	<tool> <source> -stroke <color> -strokewidth <width> [-draw "line ..."]... <destination>
//
// The draw instructions keep the order in which the segments were generated.
func Arguments(cfg Config) []string {
	segs := cfg.Segments()

	args := make([]string, 0, 2*len(segs)+7)
	args = append(args, cfg.Tool, cfg.Source)
	args = append(args,
		"-stroke", cfg.LineColor,
		"-strokewidth", cfg.LineWidth,
	)
	for _, s := range segs {
		args = append(args, s.DrawInstruction()...)
	}
	args = append(args, cfg.Destination)

	return args
}
