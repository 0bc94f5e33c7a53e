// Package httpapi is the HTTP service layer, grounded on
// 444lessio-GeoRunner/main.go: a gin engine wrapped in gin-contrib/cors,
// exposing one JSON endpoint per tree operation instead of the teacher's
// single /find-nearby route. Each tree is guarded by its own mutex owned
// here, since spec.md's concurrency model keeps the tree types
// themselves single-threaded and pushes synchronization to whichever
// caller shares them across goroutines.
package httpapi

import (
	"net/http"
	"strconv"
	"sync"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/RogerHuauya/utec-eda/bsptree"
	"github.com/RogerHuauya/utec-eda/geom"
	"github.com/RogerHuauya/utec-eda/internal/config"
	"github.com/RogerHuauya/utec-eda/internal/telemetry"
	"github.com/RogerHuauya/utec-eda/quadtree"
	"github.com/RogerHuauya/utec-eda/sstree"
)

// Server bundles the three trees with their own mutexes and the shared
// telemetry used by every handler.
type Server struct {
	cfg config.Service
	log *zap.SugaredLogger
	met *telemetry.Metrics

	quadtreeMu sync.Mutex
	quadtree   *quadtree.Tree

	bspMu sync.Mutex
	bsp   *bsptree.Tree

	sstreeMu sync.Mutex
	sstree   *sstree.Tree
}

// New builds a Server with a fresh, empty tree of each kind.
func New(cfg config.Service, log *zap.SugaredLogger, met *telemetry.Metrics) *Server {
	return &Server{
		cfg:      cfg,
		log:      log,
		met:      met,
		quadtree: quadtree.New(cfg.World, cfg.BucketSize),
		bsp:      bsptree.New(),
		sstree:   sstree.New(cfg.EmbeddingDim, cfg.MaxPointsPerNode, sstree.MedianSplit),
	}
}

// Engine builds the gin engine with every route registered, ready to
// Run.
func (s *Server) Engine() *gin.Engine {
	r := gin.Default()
	r.Use(cors.Default())
	r.Use(s.metricsMiddleware())

	r.POST("/quadtree/particles", s.handleQuadtreeInsert)
	r.GET("/quadtree/knn", s.handleQuadtreeKNN)
	r.POST("/quadtree/tick", s.handleQuadtreeTick)
	r.POST("/bsp/polygons", s.handleBSPInsert)
	r.POST("/bsp/collision", s.handleBSPCollision)
	r.POST("/sstree/data", s.handleSSTreeInsert)
	r.GET("/sstree/knn", s.handleSSTreeKNN)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return r
}

// Run starts the HTTP service and blocks until it exits.
func (s *Server) Run() error {
	s.log.Infow("starting spatial index service", "addr", s.cfg.Addr)
	return s.Engine().Run(s.cfg.Addr)
}

func (s *Server) metricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		status := strconv.Itoa(c.Writer.Status())
		s.met.HTTPRequestsTotal.WithLabelValues(c.FullPath(), status).Inc()
	}
}

type particleRequest struct {
	X  geom.Scalar `json:"x"`
	Y  geom.Scalar `json:"y"`
	VX geom.Scalar `json:"vx"`
	VY geom.Scalar `json:"vy"`
}

func (s *Server) handleQuadtreeInsert(c *gin.Context) {
	var reqs []particleRequest
	if err := c.ShouldBindJSON(&reqs); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	particles := make([]*quadtree.Particle, len(reqs))
	for i, r := range reqs {
		p := quadtree.NewParticle(geom.Point2D{X: r.X, Y: r.Y})
		p.Velocity = geom.Point2D{X: r.VX, Y: r.VY}
		particles[i] = p
	}

	s.quadtreeMu.Lock()
	accepted := s.quadtree.Insert(particles...)
	s.met.QuadtreeParticles.Set(float64(len(s.quadtree.Particles())))
	s.quadtreeMu.Unlock()

	c.JSON(http.StatusOK, gin.H{"accepted": accepted, "requested": len(reqs)})
}

func (s *Server) handleQuadtreeKNN(c *gin.Context) {
	x, errX := strconv.ParseFloat(c.Query("x"), 64)
	y, errY := strconv.ParseFloat(c.Query("y"), 64)
	k, errK := strconv.Atoi(c.Query("k"))
	if errX != nil || errY != nil || errK != nil || k <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid or missing x, y, k"})
		return
	}

	query := geom.Point2D{X: x, Y: y}

	s.quadtreeMu.Lock()
	results := s.quadtree.KNN(query, k)
	s.quadtreeMu.Unlock()

	type particleResponse struct {
		X        geom.Scalar `json:"x"`
		Y        geom.Scalar `json:"y"`
		Distance geom.Scalar `json:"distance"`
	}
	out := make([]particleResponse, len(results))
	for i, p := range results {
		out[i] = particleResponse{X: p.Position.X, Y: p.Position.Y, Distance: query.Distance(p.Position)}
	}
	c.JSON(http.StatusOK, out)
}

// handleQuadtreeTick is the service-level analogue of the teacher's
// simulateDriver goroutine: instead of a background loop silently
// mutating shared state, a client explicitly requests one advance+
// relocate pass, keeping the quadtree's single-threaded semantics
// request-scoped rather than ambient.
func (s *Server) handleQuadtreeTick(c *gin.Context) {
	s.quadtreeMu.Lock()
	for _, p := range s.quadtree.Particles() {
		p.Advance()
	}
	s.quadtree.UpdateTree()
	count := len(s.quadtree.Particles())
	s.quadtreeMu.Unlock()

	s.met.QuadtreeParticles.Set(float64(count))
	c.JSON(http.StatusOK, gin.H{"particles": count})
}

type polygonRequest struct {
	Vertices []struct {
		X, Y, Z geom.Scalar
	} `json:"vertices"`
}

func (s *Server) handleBSPInsert(c *gin.Context) {
	var req polygonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	verts := make([]geom.Point3D, len(req.Vertices))
	for i, v := range req.Vertices {
		verts[i] = geom.Point3D{X: v.X, Y: v.Y, Z: v.Z}
	}
	poly, err := geom.NewPolygon(verts)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	s.bspMu.Lock()
	s.bsp.Insert(poly)
	count := s.bsp.Root().PolygonCount()
	s.bspMu.Unlock()

	s.met.BSPPolygons.Set(float64(count))
	c.JSON(http.StatusOK, gin.H{"stored": count})
}

type collisionRequest struct {
	A struct{ X, Y, Z geom.Scalar } `json:"a"`
	B struct{ X, Y, Z geom.Scalar } `json:"b"`
}

func (s *Server) handleBSPCollision(c *gin.Context) {
	var req collisionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	segment := geom.LineSegment{
		A: geom.Point3D{X: req.A.X, Y: req.A.Y, Z: req.A.Z},
		B: geom.Point3D{X: req.B.X, Y: req.B.Y, Z: req.B.Z},
	}

	s.bspMu.Lock()
	hit := s.bsp.DetectCollision(segment)
	s.bspMu.Unlock()

	if hit == nil {
		c.JSON(http.StatusOK, gin.H{"hit": false})
		return
	}
	c.JSON(http.StatusOK, gin.H{"hit": true, "vertices": hit.Vertices})
}

type dataRequest struct {
	Embedding []geom.Scalar `json:"embedding"`
	Path      string        `json:"path"`
}

func (s *Server) handleSSTreeInsert(c *gin.Context) {
	var req dataRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	d := sstree.NewData(sstree.NewVector(req.Embedding...), req.Path)

	s.sstreeMu.Lock()
	err := s.sstree.Insert(d)
	var count int
	if err == nil {
		count = countEntries(s.sstree.Root())
	}
	s.sstreeMu.Unlock()

	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	s.met.SSTreeEntries.Set(float64(count))
	c.JSON(http.StatusOK, gin.H{"stored": count})
}

// findEmbeddingByPath walks the tree by DFS looking for path, since an
// SS-tree's internal routing is keyed on embedding proximity, not the
// opaque path identity the HTTP client names its entries by.
func findEmbeddingByPath(n *sstree.Node, path string) sstree.Vector {
	if n == nil {
		return nil
	}
	if n.Leaf {
		for _, d := range n.Data {
			if d.Path == path {
				return d.Embedding
			}
		}
		return nil
	}
	for _, c := range n.Children {
		if v := findEmbeddingByPath(c, path); v != nil {
			return v
		}
	}
	return nil
}

func countEntries(n *sstree.Node) int {
	if n == nil {
		return 0
	}
	if n.Leaf {
		return len(n.Data)
	}
	total := 0
	for _, c := range n.Children {
		total += countEntries(c)
	}
	return total
}

// handleSSTreeKNN queries by the embedding already stored under
// path_query, rather than accepting a raw vector on the wire — the
// client names an entry it previously inserted and gets back its
// nearest neighbors.
func (s *Server) handleSSTreeKNN(c *gin.Context) {
	k, err := strconv.Atoi(c.Query("k"))
	if err != nil || k <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid or missing k"})
		return
	}
	pathQuery := c.Query("path_query")
	if pathQuery == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing path_query"})
		return
	}

	s.sstreeMu.Lock()
	embedding := findEmbeddingByPath(s.sstree.Root(), pathQuery)
	var results []*sstree.Data
	if embedding != nil {
		results = s.sstree.KNN(embedding, k)
	}
	s.sstreeMu.Unlock()

	if embedding == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "path_query not found: " + pathQuery})
		return
	}

	type dataResponse struct {
		Path     string      `json:"path"`
		Distance geom.Scalar `json:"distance"`
	}
	out := make([]dataResponse, len(results))
	for i, d := range results {
		out[i] = dataResponse{Path: d.Path, Distance: d.Embedding.Distance(embedding)}
	}
	c.JSON(http.StatusOK, out)
}
