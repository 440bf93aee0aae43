package config

import "github.com/ivlev/scene2video/internal/voice"

// Backend builds the narration backend this configuration selects.
func (v *Voice) Backend(execCmd voice.ExecCmdCtx) voice.Backend {
	if v == nil {
		return &voice.ESpeakNG{ExecCmd: execCmd}
	}
	if v.SayVoice != "" {
		return &voice.Say{Voice: v.SayVoice, ExecCmd: execCmd}
	}
	if v.Command != "" {
		return &voice.CustomCmd{Command: v.Command, Args: v.Args, ExecCmd: execCmd}
	}
	return &voice.ESpeakNG{Voice: v.ESpeakNGVoice, ExecCmd: execCmd}
}
