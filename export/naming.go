package export

import "fmt"

// MosaicName names the all-patch image after the configuration producing it.
func MosaicName(space, transfer, ext string) string {
	return fmt.Sprintf("ColorChecker_All_%s_%s_.%s", space, transfer, ext)
}

// SingleName adds the 1-based patch ordinal and patch name.
func SingleName(space, transfer string, ordinal int, patch, ext string) string {
	return fmt.Sprintf("ColorChecker_Measure_Patch_%s_%s_%02d_%s.%s", space, transfer, ordinal, patch, ext)
}

func PreviewName(space, transfer, ext string) string {
	return fmt.Sprintf("ColorChecker_Preview_%s_%s.%s", space, transfer, ext)
}

func ManifestName(space, transfer string) string {
	return fmt.Sprintf("ColorChecker_%s_%s.json", space, transfer)
}

func PaletteName(space, transfer string) string {
	return fmt.Sprintf("ColorChecker_Palette_%s_%s.pal", space, transfer)
}
