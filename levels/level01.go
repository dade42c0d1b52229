package levels

// Level01 is the long overworld stage.
var Level01 = Layout{
	Name:  "level_01",
	Limit: -8200,
	Platforms: []Block{
		// ground
		{1000, 1080, -1000, 0},
		{2953, 80, 0, 900},
		{635, 80, 3048, 900},
		{2743, 80, 3819, 900},
		{2300, 80, 6647, 900},
		// pipes
		{83, 452, 1202, 752},
		{83, 409, 1631, 709},
		{83, 366, 1973, 666},
		{83, 366, 2445, 666},
		{83, 452, 6989, 752},
		// stairs, first run
		{45, 276, 5702, 838},
		{45, 276, 5745, 795},
		{45, 246, 5788, 752},
		{45, 276, 5831, 709},
		{45, 276, 5874, 666},
		// stairs, second run
		{45, 276, 6001, 666},
		{45, 276, 6044, 709},
		{45, 276, 6087, 752},
		{45, 276, 6130, 795},
		{45, 276, 6173, 838},
		// stairs, third run
		{45, 276, 6302, 838},
		{45, 276, 6345, 795},
		{45, 246, 6388, 752},
		{45, 276, 6431, 709},
		{45, 276, 6474, 666},
		{45, 276, 6517, 666},
		// stairs, fourth run
		{45, 276, 6647, 666},
		{45, 276, 6687, 709},
		{45, 276, 6728, 752},
		{45, 276, 6771, 795},
		{45, 276, 6814, 838},
		// final staircase
		{45, 576, 7717, 838},
		{45, 576, 7760, 795},
		{45, 546, 7803, 752},
		{45, 576, 7845, 709},
		{45, 576, 7888, 666},
		{45, 576, 7931, 623},
		{45, 576, 7974, 580},
		{45, 576, 8017, 537},
		{45, 576, 8060, 494},
		{45, 576, 8103, 494},
		// bricks
		{43, 43, 858, 665},
		{43, 43, 944, 665},
		{43, 43, 1030, 665},
		{43, 43, 3299, 665},
		{43, 43, 3385, 665},
		{43, 43, 3430, 493},
		{43, 43, 3473, 493},
		{43, 43, 3516, 493},
		{43, 43, 3559, 493},
		{43, 43, 3602, 493},
		{43, 43, 3645, 493},
		{43, 43, 3688, 493},
		{43, 43, 3731, 493},
		{43, 43, 3901, 493},
		{43, 43, 3944, 493},
		{43, 43, 3987, 493},
		{43, 43, 4030, 665},
		{43, 43, 4287, 665},
		{43, 43, 4330, 665},
		{43, 43, 5058, 665},
		{43, 43, 5187, 493},
		{43, 43, 5230, 493},
		{43, 43, 5273, 493},
		{43, 43, 5488, 493},
		{43, 43, 5574, 493},
		{43, 43, 5617, 493},
		{43, 43, 5531, 665},
		{43, 43, 5574, 665},
		{43, 43, 7202, 665},
		{43, 43, 7245, 665},
		{43, 43, 7331, 665},
		// question blocks
		{43, 43, 685, 665},
		{43, 43, 901, 665},
		{43, 43, 987, 665},
		{43, 43, 943, 493},
		{43, 43, 3342, 665},
		{43, 43, 4030, 493},
		{43, 43, 4544, 665},
		{43, 43, 4672, 665},
		{43, 43, 4672, 493},
		{43, 43, 4800, 665},
		{43, 43, 5531, 493},
		{43, 43, 7288, 665},
	},
}
