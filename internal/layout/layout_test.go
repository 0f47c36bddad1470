package layout

import (
	"image"
	"testing"

	"github.com/stretchr/testify/require"

	"ur_go/internal/config"
)

func TestTileLength(t *testing.T) {
	require.Equal(t, 137, TileLength(1920, 1080, 14, 5))
	require.Equal(t, 100, TileLength(1400, 500, 14, 5))
	require.Equal(t, 50, TileLength(1400, 250, 14, 5))
}

func TestNew(t *testing.T) {
	lay := New(config.Default())

	require.Equal(t, 137, lay.TileLen)

	t.Run("track", func(t *testing.T) {
		for i, tile := range lay.Track {
			require.Equal(t, image.Rect((i+1)*137, 274, (i+2)*137, 411), tile.Rectangle)
			require.Equal(t, 137, tile.Len())
		}
		require.Equal(t, image.Pt(205, 342), lay.Track[0].Center())
		require.Equal(t, lay.Track[3], lay.Safe())
		require.Equal(t, 342, lay.TrackY())
	})

	t.Run("side tiles", func(t *testing.T) {
		require.Len(t, lay.SideTiles, 12)
		require.Equal(t, image.Rect(137, 137, 274, 274), lay.SideTiles[0].Rectangle)
		// column 6 of the top row skips the two middle columns
		require.Equal(t, image.Rect(7*137, 137, 8*137, 274), lay.SideTiles[4].Rectangle)
		require.Equal(t, image.Rect(8*137, 411, 9*137, 548), lay.SideTiles[11].Rectangle)
	})

	t.Run("dice", func(t *testing.T) {
		require.Len(t, lay.Dice, 4)
		for i, d := range lay.Dice {
			require.Equal(t, image.Pt(1370+i*137, 319), d.Center)
			require.Equal(t, 58, d.Side)
			require.Equal(t, 50, d.Height)
			require.Equal(t, image.Pt(d.Center.X, 326), d.Pip)
			require.Equal(t, image.Pt(d.Center.X-58, 369), d.Vertices[0])
			require.Equal(t, image.Pt(d.Center.X+58, 369), d.Vertices[1])
			require.Equal(t, image.Pt(d.Center.X, 269), d.Vertices[2])
		}
	})

	t.Run("labels", func(t *testing.T) {
		require.Equal(t, image.Pt(1507, 411), lay.RolledLabel)
		require.Equal(t, 137, lay.RollLabelTop)
	})
}

func TestSideOf(t *testing.T) {
	lay := New(config.Default())

	require.Equal(t, Top, lay.SideOf(0))
	require.Equal(t, Top, lay.SideOf(342))
	require.Equal(t, Bottom, lay.SideOf(343))
	require.Equal(t, Bottom, lay.SideOf(1079))
	require.Equal(t, "top", Top.String())
	require.Equal(t, "bottom", Bottom.String())
}

func TestPlayerTiles(t *testing.T) {
	lay := New(config.Default())

	for _, tc := range []struct {
		side Side
		dy   int
	}{
		{Top, -137},
		{Bottom, 137},
	} {
		t.Run(tc.side.String(), func(t *testing.T) {
			tiles := lay.PlayerTiles(tc.side)

			require.Len(t, tiles, PlayerTiles)
			for i := 0; i < 4; i++ {
				require.Equal(t, lay.Track[i].Center().Add(image.Pt(0, tc.dy)), tiles[i].Center())
			}
			for i := 0; i < TrackTiles; i++ {
				require.Equal(t, lay.Track[i], tiles[4+i])
			}
			require.Equal(t, lay.Track[6].Center().Add(image.Pt(0, tc.dy)), tiles[12].Center())
			require.Equal(t, lay.Track[7].Center().Add(image.Pt(0, tc.dy)), tiles[13].Center())
		})
	}
}

func TestReserveCenters(t *testing.T) {
	lay := New(config.Default())

	top := lay.ReserveCenters(Top, 7)
	require.Len(t, top, 7)
	require.Equal(t, image.Pt(205, 68), top[0])
	require.Equal(t, image.Pt(205+6*75, 68), top[6])

	bottom := lay.ReserveCenters(Bottom, 7)
	require.Equal(t, image.Pt(205, 616), bottom[0])
	require.Equal(t, image.Pt(280, 616), bottom[1])
}
