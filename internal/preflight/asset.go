package preflight

import (
	"context"
	"fmt"

	"github.com/Aman-CERP/libcheck/internal/asset"
	errs "github.com/Aman-CERP/libcheck/internal/errors"
	"github.com/Aman-CERP/libcheck/internal/native"
)

// NativeImporter imports a buffer with a system importer library.
type NativeImporter interface {
	ReadFileFromMemory(data []byte, flags asset.PostProcess, hint string) (asset.Summary, error)
}

// AssetCheck imports the unit cube and reports mesh statistics.
type AssetCheck struct {
	data       []byte
	loadNative func(reg *native.Registry, candidates []string) (NativeImporter, error)
}

// NewAssetCheck returns the check importing asset.UnitCubePLY.
func NewAssetCheck() *AssetCheck {
	return &AssetCheck{
		data: []byte(asset.UnitCubePLY),
		loadNative: func(reg *native.Registry, candidates []string) (NativeImporter, error) {
			return asset.LoadNative(reg, candidates)
		},
	}
}

func (c *AssetCheck) Name() string   { return "asset" }
func (c *AssetCheck) Title() string  { return "Asset importer" }
func (c *AssetCheck) Required() bool { return true }

// Run implements Check.
func (c *AssetCheck) Run(_ context.Context, env *Env) CheckResult {
	cfg := env.Config.Assets

	var flags asset.PostProcess
	if cfg.Triangulate {
		flags |= asset.Triangulate
	}
	if cfg.JoinIdenticalVertices {
		flags |= asset.JoinIdenticalVertices
	}

	im := asset.NewImporter()
	defer im.FreeScene()

	scene, err := im.ReadFileFromMemory(c.data, flags, cfg.Hint)
	sum := asset.Summarize(scene)
	if err == nil && !sum.Usable() {
		err = errs.New(errs.ErrCodeIncompleteScene, "scene is incomplete or has no root node", nil)
	}
	if err != nil {
		reason := im.ErrorString()
		if reason == "" {
			reason = err.Error()
			if ce, ok := err.(*errs.CheckError); ok {
				reason = ce.Message
			}
		}
		return fail(env, c.Name(), errs.New(errs.GetCode(err),
			fmt.Sprintf("Asset import error: %s", reason), err))
	}
	c.printSummary(env, "Asset importer", sum)

	msg := fmt.Sprintf("%d mesh(es), %d vertices, %d faces", sum.NumMeshes, sum.FirstMeshVertices, sum.FirstMeshFaces)

	nat, err := c.loadNative(env.Libraries, cfg.Libraries.ForOS())
	if err != nil {
		env.Out.Line("Asset importer is working.")
		res := warn(env, c.Name(), err)
		res.Message = msg + "; native importer unavailable: " + res.Message
		return res
	}

	natSum, err := nat.ReadFileFromMemory(c.data, flags, cfg.Hint)
	if err == nil && !natSum.Usable() {
		err = errs.New(errs.ErrCodeIncompleteScene, "native scene is incomplete or has no root node", nil)
	}
	if err != nil {
		return fail(env, c.Name(), err)
	}
	c.printSummary(env, "Native importer", natSum)

	env.Out.Line("Asset importer is working.")
	return pass(msg)
}

func (c *AssetCheck) printSummary(env *Env, who string, sum asset.Summary) {
	env.Out.Linef("%s loaded test scene with %d meshes", who, sum.NumMeshes)
	if sum.NumMeshes > 0 {
		env.Out.Linef("First mesh has %d vertices and %d faces", sum.FirstMeshVertices, sum.FirstMeshFaces)
	}
}
