package detector

func Detect(isTTY bool, ci string) OutputMode {
	return detect(isTTY, ci)
}
