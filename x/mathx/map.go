package mathx

// MapRange maps x in [inMin,inMax] to [outMin,outMax] with 32-bit
// intermediates. Either range may be inverted (min > max); the output is
// clamped to the out range when the input falls outside the in range.
func MapRange(x, inMin, inMax, outMin, outMax int) int {
	if inMax == inMin {
		return outMin
	}
	num := int32(x-inMin) * int32(outMax-outMin)
	den := int32(inMax - inMin)
	out := outMin + int(num/den)
	return Clamp(out, outMin, outMax)
}
