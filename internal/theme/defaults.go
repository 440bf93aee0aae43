package theme

// Default returns the built-in dark theme.
func Default() *Theme {
	return &Theme{
		Name: "scene-dark",
		Colors: Colors{
			BgPrimary:   "#0f172a",
			BgSecondary: "#1e293b",
			BgTertiary:  "#334155",

			FgPrimary:   "#f8fafc",
			FgSecondary: "#cbd5e1",
			FgMuted:     "#64748b",

			Accent:       "#3b82f6",
			AccentHover:  "#60a5fa",
			AccentSubtle: "rgba(59, 130, 246, 0.15)",

			Success: "#22c55e",
			Warning: "#eab308",
			Error:   "#ef4444",
		},
		Typography: Typography{
			FontSans: `"Inter", ui-sans-serif, system-ui, sans-serif`,
			FontMono: `"JetBrains Mono", ui-monospace, monospace`,

			TextXS:   "0.75rem",
			TextSM:   "0.875rem",
			TextBase: "1rem",
			TextLG:   "1.25rem",
			TextXL:   "1.5rem",
			Text2XL:  "2rem",
			Text3XL:  "2.75rem",
			Text4XL:  "3.5rem",

			LeadingTight:   "1.15",
			LeadingNormal:  "1.5",
			LeadingRelaxed: "1.7",

			WeightNormal:   "400",
			WeightMedium:   "500",
			WeightSemibold: "600",
			WeightBold:     "700",
		},
		Spacing: Spacing{
			Space1:  "0.25rem",
			Space2:  "0.5rem",
			Space3:  "0.75rem",
			Space4:  "1rem",
			Space6:  "1.5rem",
			Space8:  "2rem",
			Space12: "3rem",
			Space16: "4rem",
			Space24: "6rem",

			ContainerPadding: "4rem",

			RadiusSM:   "0.25rem",
			RadiusMD:   "0.5rem",
			RadiusLG:   "1rem",
			RadiusFull: "9999px",
		},
		Timing: Timing{
			DurationInstant: "0ms",
			DurationFast:    "150ms",
			DurationNormal:  "300ms",
			DurationSlow:    "500ms",
			DurationSlower:  "800ms",

			EaseDefault: "cubic-bezier(0.4, 0, 0.2, 1)",
			EaseIn:      "cubic-bezier(0.4, 0, 1, 1)",
			EaseOut:     "cubic-bezier(0, 0, 0.2, 1)",
			EaseInOut:   "cubic-bezier(0.65, 0, 0.35, 1)",
			EaseSpring:  "cubic-bezier(0.34, 1.56, 0.64, 1)",
		},
		Shadows: Shadows{
			ShadowSM: "0 1px 2px rgba(0, 0, 0, 0.3)",
			ShadowMD: "0 4px 12px rgba(0, 0, 0, 0.4)",
			ShadowLG: "0 12px 32px rgba(0, 0, 0, 0.5)",
		},
	}
}
