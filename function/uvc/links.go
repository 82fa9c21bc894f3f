package uvc

import "path"

// link is a symlink to create during registration. Both paths are relative
// to the function directory.
type link struct {
	target string
	link   string
}

// planLinks returns every symlink a function with the given frames needs, in
// creation order: one header link per frame, then the streaming class links,
// then the control class links.
//
// All targets must exist before the first link is created, so callers apply
// the plan only after every directory has been written.
func planLinks(frames []Frame) []link {
	links := make([]link, 0, len(frames)+len(streamingClassSpeeds)+len(controlClassSpeeds))

	for _, frame := range frames {
		links = append(links, link{
			target: frame.Dir(),
			link:   path.Join(streamingHeaderDir, frame.Name),
		})
	}
	for _, speed := range streamingClassSpeeds {
		links = append(links, link{
			target: streamingHeaderDir,
			link:   path.Join("streaming/class", speed, "h"),
		})
	}
	for _, speed := range controlClassSpeeds {
		links = append(links, link{
			target: controlHeaderDir,
			link:   path.Join("control/class", speed, "h"),
		})
	}

	return links
}
