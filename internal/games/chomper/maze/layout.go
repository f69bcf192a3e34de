package maze

// classicLayout is the static maze topology. Layout characters:
// '#' wall, '.' pellet, 'o' power pellet, '-' ghost house door,
// '%' fruit spot, ' ' empty corridor.
// Connectivity and wall positions never change during play; only
// collectible cells mutate to empty as they are consumed.
var classicLayout = []string{
	"############################",
	"#............##............#",
	"#o####.#####.##.#####.####o#",
	"#.####.#####.##.#####.####.#",
	"#..........................#",
	"#.####.##.########.##.####.#",
	"#......##....##....##......#",
	"######.##### ## #####.######",
	"     #.##### ## #####.#     ",
	"     #.##          ##.#     ",
	"     #.## ###--### ##.#     ",
	"######.## #      # ##.######",
	"      .   #      #   .      ",
	"######.## #      # ##.######",
	"     #.## ######## ##.#     ",
	"     #.##    %%    ##.#     ",
	"     #.## ######## ##.#     ",
	"######.## ######## ##.######",
	"#............##............#",
	"#.####.#####.##.#####.####.#",
	"#o..##.......  .......##..o#",
	"###.##.##.########.##.##.###",
	"#......##....##....##......#",
	"#.##########.##.##########.#",
	"#..........................#",
	"############################",
}

// Board dimensions in cells.
const (
	Width  = 28
	Height = 26
)

// Fixed positions in the classic layout, in grid cells.
const (
	PlayerSpawnX = 14
	PlayerSpawnY = 20

	// GhostHome is the cell eaten ghosts navigate back to.
	GhostHomeX = 14
	GhostHomeY = 11

	// ScatterCorner is the corner the pokey personality retreats to
	// when it gets too close to the player.
	ScatterCornerX = 0
	ScatterCornerY = 25
)

// GhostSpawns lists the four ghost starting cells inside the ghost house,
// in roll-call order (chaser, ambusher, fickle, pokey).
var GhostSpawns = [4][2]int{
	{13, 11},
	{14, 11},
	{13, 12},
	{14, 12},
}
