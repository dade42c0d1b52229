package levels

var Level02 = Layout{
	Name:  "level_02",
	Limit: -8200,
	Platforms: []Block{
		{9000, 70, 0, 580},
		{310, 30, 450, 570},
		{210, 30, 850, 420},
		{210, 30, 1000, 520},
		{210, 30, 1120, 280},
	},
}
