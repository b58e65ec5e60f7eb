package chart

import "hdrchecker/colorimetry"

var charts = map[string]Chart{
	"ColorChecker 2005": build("ColorChecker 2005", colorimetry.WhiteD50, [][3]float64{
		{0.4316, 0.3777, 0.1008},
		{0.4197, 0.3744, 0.3495},
		{0.2760, 0.3016, 0.1836},
		{0.3703, 0.4499, 0.1325},
		{0.2999, 0.2856, 0.2304},
		{0.2848, 0.3911, 0.4178},
		{0.5295, 0.4055, 0.3118},
		{0.2305, 0.2106, 0.1126},
		{0.5012, 0.3273, 0.1938},
		{0.3319, 0.2482, 0.0637},
		{0.3984, 0.5008, 0.4446},
		{0.4957, 0.4427, 0.4357},
		{0.2018, 0.1692, 0.0575},
		{0.3253, 0.5032, 0.2318},
		{0.5686, 0.3303, 0.1257},
		{0.4697, 0.4734, 0.5981},
		{0.4159, 0.2688, 0.2009},
		{0.2131, 0.3023, 0.1930},
		{0.3469, 0.3608, 0.9131},
		{0.3440, 0.3584, 0.5894},
		{0.3432, 0.3581, 0.3632},
		{0.3446, 0.3579, 0.1915},
		{0.3401, 0.3548, 0.0883},
		{0.3406, 0.3537, 0.0311},
	}),
	"BabelColor Average": build("BabelColor Average", colorimetry.WhiteD50, [][3]float64{
		{0.4325, 0.3788, 0.1034},
		{0.4191, 0.3748, 0.3525},
		{0.2761, 0.3004, 0.1847},
		{0.3700, 0.4501, 0.1335},
		{0.3020, 0.2877, 0.2324},
		{0.2856, 0.3910, 0.4174},
		{0.5291, 0.4075, 0.3117},
		{0.2339, 0.2155, 0.1140},
		{0.5008, 0.3293, 0.1979},
		{0.3326, 0.2556, 0.0644},
		{0.3989, 0.4998, 0.4435},
		{0.4962, 0.4428, 0.4358},
		{0.2040, 0.1696, 0.0579},
		{0.3270, 0.5033, 0.2307},
		{0.5709, 0.3298, 0.1268},
		{0.4694, 0.4732, 0.6081},
		{0.4177, 0.2704, 0.2007},
		{0.2151, 0.3037, 0.1903},
		{0.3488, 0.3628, 0.9129},
		{0.3451, 0.3596, 0.5885},
		{0.3446, 0.3590, 0.3595},
		{0.3438, 0.3589, 0.1912},
		{0.3423, 0.3576, 0.0893},
		{0.3439, 0.3565, 0.0320},
	}),
	"ColorChecker 1976": build("ColorChecker 1976", colorimetry.WhiteC, [][3]float64{
		{0.4002, 0.3504, 0.1005},
		{0.3773, 0.3446, 0.3582},
		{0.2470, 0.2514, 0.1933},
		{0.3372, 0.4220, 0.1329},
		{0.2651, 0.2400, 0.2427},
		{0.2608, 0.3430, 0.4306},
		{0.5060, 0.4070, 0.3005},
		{0.2110, 0.1750, 0.1200},
		{0.4533, 0.3058, 0.1977},
		{0.2845, 0.2020, 0.0656},
		{0.3800, 0.4887, 0.4429},
		{0.4729, 0.4375, 0.4319},
		{0.1866, 0.1285, 0.0611},
		{0.3046, 0.4782, 0.2339},
		{0.5385, 0.3129, 0.1200},
		{0.4480, 0.4702, 0.5910},
		{0.3635, 0.2325, 0.1977},
		{0.1958, 0.2519, 0.1977},
		{0.3101, 0.3163, 0.9001},
		{0.3101, 0.3163, 0.5910},
		{0.3101, 0.3163, 0.3620},
		{0.3101, 0.3163, 0.1977},
		{0.3101, 0.3163, 0.0900},
		{0.3101, 0.3163, 0.0313},
	}),
}

func build(name string, white colorimetry.XY, xyY [][3]float64) Chart {
	patches := make([]Patch, len(xyY))
	for i, v := range xyY {
		patches[i] = Patch{
			Index: i,
			Name:  Names[i],
			Value: colorimetry.XyY{X: v[0], Y: v[1], Lum: v[2]},
		}
	}
	return Chart{Name: name, WhitePoint: white, Patches: patches}
}
