package model_test

import (
	"testing"

	model "github.com/okian/roster/internal/domain/model"
	"github.com/smartystreets/goconvey/convey"
)

func TestPerson(t *testing.T) {
	convey.Convey("Given the Person entity", t, func() {
		convey.Convey("When creating a person with a valid name", func() {
			p, err := model.NewPerson("Alice Pauline")

			convey.Convey("Then it should carry the name", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(p.Name(), convey.ShouldEqual, "Alice Pauline")
			})
		})

		convey.Convey("When creating a person with an empty name", func() {
			p, err := model.NewPerson("")

			convey.Convey("Then construction should fail", func() {
				convey.So(p, convey.ShouldBeNil)
				convey.So(err, convey.ShouldEqual, model.ErrBlankPersonName)
			})
		})

		convey.Convey("When creating a person with a whitespace-only name", func() {
			p, err := model.NewPerson("   ")

			convey.Convey("Then construction should fail", func() {
				convey.So(p, convey.ShouldBeNil)
				convey.So(err, convey.ShouldEqual, model.ErrBlankPersonName)
			})
		})

		convey.Convey("When comparing two persons with the same name", func() {
			a, err := model.NewPerson("Alice")
			convey.So(err, convey.ShouldBeNil)
			b, err := model.NewPerson("Alice")
			convey.So(err, convey.ShouldBeNil)

			convey.Convey("Then they should be equal", func() {
				convey.So(a.Equal(b), convey.ShouldBeTrue)
				convey.So(b.Equal(a), convey.ShouldBeTrue)
			})
		})

		convey.Convey("When comparing persons whose names differ in case", func() {
			a, err := model.NewPerson("alice")
			convey.So(err, convey.ShouldBeNil)
			b, err := model.NewPerson("Alice")
			convey.So(err, convey.ShouldBeNil)

			convey.Convey("Then they should not be equal", func() {
				convey.So(a.Equal(b), convey.ShouldBeFalse)
			})
		})

		convey.Convey("When comparing against nil", func() {
			a, err := model.NewPerson("Alice")
			convey.So(err, convey.ShouldBeNil)

			convey.Convey("Then the comparison should be false", func() {
				convey.So(a.Equal(nil), convey.ShouldBeFalse)
			})
		})
	})
}

func TestTag(t *testing.T) {
	convey.Convey("Given the Tag value", t, func() {
		convey.Convey("When creating a tag with a valid label", func() {
			tag, err := model.NewTag("friends")

			convey.Convey("Then it should carry the label", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(tag.Label(), convey.ShouldEqual, "friends")
			})
		})

		convey.Convey("When creating a tag with a blank label", func() {
			_, err := model.NewTag(" ")

			convey.Convey("Then construction should fail", func() {
				convey.So(err, convey.ShouldEqual, model.ErrBlankTag)
			})
		})

		convey.Convey("When using tags as map keys", func() {
			a, err := model.NewTag("friends")
			convey.So(err, convey.ShouldBeNil)
			b, err := model.NewTag("friends")
			convey.So(err, convey.ShouldBeNil)

			set := map[model.Tag]struct{}{a: {}}

			convey.Convey("Then tags with the same label should collide", func() {
				_, ok := set[b]
				convey.So(ok, convey.ShouldBeTrue)
				convey.So(len(set), convey.ShouldEqual, 1)
			})
		})
	})
}
