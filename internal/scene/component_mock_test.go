package scene_test

import (
	"math/rand"
	"testing"
	"time"

	"github.com/san-kum/bgcircles/internal/scene"
	"github.com/san-kum/bgcircles/internal/scene/mocks"
	"go.uber.org/mock/gomock"
)

func TestComponentReleasesSubscriptions(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := mocks.NewMockHost(ctrl)
	var frame func()

	gomock.InOrder(
		h.EXPECT().OnResize(gomock.Any()).Return(scene.Token(1)),
		h.EXPECT().Viewport().Return(scene.Viewport{Width: 800, Height: 600}),
		h.EXPECT().RequestFrame(gomock.Any()).DoAndReturn(func(fn func()) scene.Token {
			frame = fn
			return scene.Token(2)
		}),
		h.EXPECT().Now().Return(time.UnixMilli(0)),
		h.EXPECT().RequestFrame(gomock.Any()).Return(scene.Token(3)),
		h.EXPECT().CancelFrame(scene.Token(3)),
		h.EXPECT().RemoveResize(scene.Token(1)),
	)

	c := scene.NewComponent(h, scene.DefaultOptions(), nil, scene.WithRand(rand.New(rand.NewSource(1))))
	if err := c.Mount(); err != nil {
		t.Fatalf("mount failed: %v", err)
	}
	frame()
	c.Unmount()

	// A frame the host delivers after teardown must not touch the host again.
	frame()
}

func TestComponentNoFrameWhenUnknown(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := mocks.NewMockHost(ctrl)
	h.EXPECT().OnResize(gomock.Any()).Return(scene.Token(7))
	h.EXPECT().Viewport().Return(scene.Viewport{})
	h.EXPECT().RemoveResize(scene.Token(7))

	c := scene.NewComponent(h, scene.DefaultOptions(), nil)
	if err := c.Mount(); err != nil {
		t.Fatalf("mount failed: %v", err)
	}
	c.Unmount()
}
