package cmd

import (
	"github.com/ndoll1998/FairPT/material"
	"github.com/ndoll1998/FairPT/mesh"
	"github.com/ndoll1998/FairPT/scene"
	"github.com/ndoll1998/FairPT/types"
)

// Material handles of the built-in cornell scene.
const (
	matWhite uint32 = iota
	matRed
	matBlue
	matLight
	matGlass
	matMirror
)

// sceneScale blows the unit cornell box up to world size.
const sceneScale = 20.0

// buildCornellScene assembles the built-in cornell box: the box itself, two
// parallelepipeds, a glass and a mirror sphere and, when objPath is given,
// an extra mesh fitted into the back half of the box.
func buildCornellScene(objPath string, debug string) ([]scene.Boundable, []scene.Material, *scene.Camera, error) {
	materials := []scene.Material{
		material.Lambertian(material.RGB(0.75, 0.75, 0.75)),
		material.Lambertian(material.RGB(0.75, 0.25, 0.25)),
		material.Lambertian(material.RGB(0.25, 0.25, 0.75)),
		material.NewLight(material.RGB(3, 3, 3)),
		material.Dielectric(material.RGB(1, 1, 1), 1.5),
		material.Metallic(material.RGB(1, 1, 1), 0),
	}
	if debugMat := debugMaterial(debug); debugMat != nil {
		for i := range materials {
			materials[i] = debugMat
		}
	}

	box := mesh.CornellBox(matWhite, matRed, matBlue, matLight)
	box.Extend(mesh.Parallelepiped(
		types.XYZ(0.25, 0, -0.5), types.XYZ(0.15, 0, -0.8),
		types.XYZ(0.55, 0, -0.6), types.XYZ(0.25, 0.6, -0.5), matWhite,
	))
	box.Extend(mesh.Parallelepiped(
		types.XYZ(0.8, 0, -0.15), types.XYZ(0.5, 0, -0.25),
		types.XYZ(0.9, 0, -0.45), types.XYZ(0.8, 0.3, -0.15), matWhite,
	))

	if objPath != "" {
		extra, err := mesh.LoadObj(objPath, matGlass)
		if err != nil {
			return nil, nil, nil, err
		}
		extra.FitBox(types.XYZ(0.1, 0.1, -0.4), types.XYZ(0.9, 0.9, -1.0))
		box.Extend(extra)
	}

	box.Scale(sceneScale)

	objects := box.Boundables()
	objects = append(objects,
		&scene.Sphere{
			Center:   types.XYZ(0.7, 0.45, -0.3).Mul(sceneScale),
			Radius:   0.15 * sceneScale,
			Material: matGlass,
		},
		&scene.Sphere{
			Center:   types.XYZ(0.3, 0.15, -0.3).Mul(sceneScale),
			Radius:   0.15 * sceneScale,
			Material: matMirror,
		},
	)

	cam := scene.NewCamera(
		types.XYZ(0.5, 0.5, 1.35).Mul(sceneScale),
		types.XYZ(0, 0, -1),
		types.XYZ(0, 1, 0),
	)
	cam.SetFov(40)
	cam.SetVpDist(1.35*sceneScale + 1e-3)

	return objects, materials, cam, nil
}

// debugMaterial maps a --debug flag value to a visualisation material.
func debugMaterial(name string) scene.Material {
	switch name {
	case "normal":
		return material.Normal{}
	case "depth":
		return material.Depth{MinDist: 0, MaxDist: 3 * sceneScale}
	case "cosine":
		return material.Cosine{}
	}
	return nil
}
