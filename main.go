package main

import (
	"log"
	"os"
	"runtime"
	"time"

	"toy_renderbase/model"
	"toy_renderbase/stl"

	vm "local/vector_math"
)

const PROGRAM_NAME = "Toy renderbase"
const WINDOW_WIDTH, WINDOW_HEIGHT int32 = 1280, 720
const FRAME_COUNT = 120
const FRAME_TIME = time.Second / 60

func init() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.SetOutput(os.Stdout)
	log.Printf("Starting %s", PROGRAM_NAME)
	log.Printf("Using GoLang: [%s]", runtime.Version())
}

// frameState keeps the two orientations the cube is blended between.
type frameState struct {
	from vm.Quat
	to   vm.Quat
}

func onDraw(elapsed float64, s *frameState, scene *model.Scene) {
	cube, err := scene.FindInScene("cube")
	if err != nil {
		log.Printf("Skipping frame update: %v", err)
		return
	}
	// ping pong between both orientations every two seconds
	t := float32(elapsed/2) - float32(int(elapsed/2))
	if int(elapsed/2)%2 == 1 {
		t = 1 - t
	}
	rot := s.from
	rot.Slerp(s.to, t)
	cube.SetRotation(rot)
}

func main() {
	cam := model.NewCamera(45, 0.1, 100)
	cam.SetAspect(float32(WINDOW_WIDTH) / float32(WINDOW_HEIGHT))
	cam.Move(vm.Vec3{Y: 1, Z: 5})
	cam.SetTarget(vm.Vec3{})

	scene := model.NewScene()
	cube := model.NewCubeModel("cube")
	scene.AddToScene(cube, nil)

	grid := model.NewGridPlane("grid", 8)
	grid.TranslateByCoords(0, -1, 0).Rotate(vm.ToRad(-90), vm.Vec3{X: 1}).Scale(vm.Vec3{X: 4, Y: 4, Z: 1})
	scene.AddToScene(grid, nil)

	if len(os.Args) > 1 {
		mesh, err := stl.ReadFile(os.Args[1])
		if err != nil {
			log.Printf("Continuing without stl model: %v", err)
		} else {
			// stl parts are usually modeled in millimeters
			m := model.NewModel(mesh, "stl")
			m.Scale(vm.Vec3{X: 0.01, Y: 0.01, Z: 0.01})
			scene.AddToScene(m, cube.Object3D)
		}
	}

	state := &frameState{}
	state.from = *vm.NewQuat()
	state.to.FromEuler(0, 180, 45)

	var uploaded int
	for frame := 0; frame < FRAME_COUNT; frame++ {
		onDraw(float64(frame)*FRAME_TIME.Seconds(), state, scene)
		calls, err := scene.DrawCalls(cam)
		if err != nil {
			log.Printf("Frame %d dropped: %v", frame, err)
			continue
		}
		for _, c := range calls {
			uploaded += len(c.Ubo.Bytes())
		}
		if frame%60 == 0 {
			log.Printf("Frame %d: %d draw calls, cube at\n%v", frame, len(calls), calls[0].Ubo.Model)
		}
	}
	log.Printf("Finished %d frames, %d KiB of uniform data sequenced (%d Bytes per draw call)",
		FRAME_COUNT, uploaded/1024, model.SizeOfUbo())

	scene.ClearScene()
}
